// handlers/live.go - Live activity feed over websocket.
//
// Every recorded action's progression result is broadcast to connected
// clients as a feed event. Clients are read-only; incoming messages are
// drained and ignored.
package handlers

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"drawly/progression"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const feedSendBufferSize = 64

type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

var (
	feedClients = make(map[*feedClient]bool)
	feedMu      sync.RWMutex
)

type feedEvent struct {
	UserID          uint      `json:"user_id"`
	ActionType      string    `json:"action_type"`
	PointsEarned    int       `json:"points_earned"`
	Level           int       `json:"level"`
	LeveledUp       bool      `json:"leveled_up"`
	NewAchievements []string  `json:"new_achievements,omitempty"`
	ChallengeDone   bool      `json:"challenge_completed,omitempty"`
	At              time.Time `json:"at"`
}

// LiveFeedUpgrade gates the websocket route behind a proper upgrade request.
func LiveFeedUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// LiveFeed is the websocket handler for /ws/feed.
var LiveFeed = websocket.New(func(conn *websocket.Conn) {
	client := &feedClient{
		conn: conn,
		send: make(chan []byte, feedSendBufferSize),
	}

	feedMu.Lock()
	feedClients[client] = true
	feedMu.Unlock()

	defer func() {
		feedMu.Lock()
		delete(feedClients, client)
		feedMu.Unlock()
		close(client.send)
		conn.Close()
	}()

	go func() {
		for msg := range client.send {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}()

	// Drain reads until the client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
})

// broadcastResult pushes one progression result to every feed client.
// Slow clients are skipped rather than blocking the request path.
func broadcastResult(userID uint, result *progression.Result) {
	var achievementIDs []string
	for _, def := range result.UnlockedAchievements {
		achievementIDs = append(achievementIDs, def.ID)
	}

	event := feedEvent{
		UserID:          userID,
		ActionType:      result.ActionType,
		PointsEarned:    result.PointsEarned,
		Level:           result.NewLevel.Level,
		LeveledUp:       result.LeveledUp,
		NewAchievements: achievementIDs,
		At:              time.Now().UTC(),
	}
	if result.WeeklyChallenge != nil && result.WeeklyChallenge.Completed {
		event.ChallengeDone = true
	}

	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("live feed: failed to marshal event: %v", err)
		return
	}

	feedMu.RLock()
	defer feedMu.RUnlock()
	for client := range feedClients {
		select {
		case client.send <- msg:
		default:
		}
	}
}
