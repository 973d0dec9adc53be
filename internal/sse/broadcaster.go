package sse

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/find-the-imposter/internal/game"
	"github.com/aaronzipp/find-the-imposter/internal/models"
)

// Delivery is a message addressed to one subscriber channel
type Delivery struct {
	Client   chan models.SSEMessage
	PlayerID string
	Message  models.SSEMessage
}

// AddClient adds a new subscriber to the lobby
func AddClient(lobby *models.Lobby, client chan models.SSEMessage, playerID string) {
	lobby.Lock()
	defer lobby.Unlock()

	// Warn if the same player has multiple connections
	dup := 0
	for _, pid := range lobby.GetSSEClients() {
		if pid == playerID {
			dup++
		}
	}
	if dup > 0 {
		log.Warn().Str("room", lobby.Room.Code).Str("player", playerID).Int("existing", dup).
			Msg("player opened an additional subscription")
	}
	lobby.AddSSEClient(client, playerID)
}

// RemoveClient removes a subscriber from the lobby
func RemoveClient(lobby *models.Lobby, client chan models.SSEMessage) {
	lobby.Lock()
	defer lobby.Unlock()
	lobby.RemoveSSEClient(client)
	log.Debug().Str("room", lobby.Room.Code).Int("clients", lobby.SSEClientCount()).Msg("subscriber removed")
}

// Personalize renders one message per subscriber (must be called with lock
// held). render may return ok=false to skip a subscriber.
func Personalize(lobby *models.Lobby, event string, render func(playerID string) (data string, ok bool)) []Delivery {
	clients := lobby.GetSSEClients()
	out := make([]Delivery, 0, len(clients))
	for client, playerID := range clients {
		data, ok := render(playerID)
		if !ok {
			continue
		}
		out = append(out, Delivery{
			Client:   client,
			PlayerID: playerID,
			Message:  models.SSEMessage{Event: event, Data: data},
		})
	}
	return out
}

// To addresses one message to every subscription held by playerID (must be
// called with lock held)
func To(lobby *models.Lobby, playerID, event, data string) []Delivery {
	var out []Delivery
	for client, pid := range lobby.GetSSEClients() {
		if pid == playerID {
			out = append(out, Delivery{
				Client:   client,
				PlayerID: pid,
				Message:  models.SSEMessage{Event: event, Data: data},
			})
		}
	}
	return out
}

// Send delivers prepared messages WITHOUT holding any lobby lock. A client
// that does not accept within the timeout is skipped.
func Send(deliveries []Delivery) int {
	sent := 0
	timeout := time.Duration(game.SSETimeoutSeconds) * time.Second
	for _, d := range deliveries {
		select {
		case d.Client <- d.Message:
			sent++
		case <-time.After(timeout):
			log.Debug().Str("player", d.PlayerID).Str("event", d.Message.Event).Msg("timeout sending to client")
		}
	}
	return sent
}

// Broadcast sends the same message to all connected subscribers
func Broadcast(lobby *models.Lobby, event, data string) int {
	lobby.RLock()
	deliveries := Personalize(lobby, event, func(string) (string, bool) { return data, true })
	lobby.RUnlock()

	sent := Send(deliveries)
	log.Debug().Str("event", event).Int("sent", sent).Int("clients", len(deliveries)).Msg("broadcast")
	return sent
}
