package socket

import (
	"log"

	"kindred_server/models"

	socketio "github.com/googollee/go-socket.io"
)

// Hub wraps the Socket.IO server and pushes engine events to connected
// clients. Delivery is best-effort: a client that is not connected simply
// misses the broadcast.
type Hub struct {
	Server *socketio.Server
}

// NewHub initializes the Socket.IO server and its event handlers
func NewHub() *Hub {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("✅ Socket connected:", s.ID())
		return nil
	})

	// Clients join a room per user id to receive their own events
	server.OnEvent("/", "join", func(s socketio.Conn, room string) {
		if room == "" {
			log.Println("❌ Invalid room in join request")
			return
		}
		log.Printf("👥 Socket %s joined room %s", s.ID(), room)
		s.Join(room)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", s.ID(), reason)
	})

	return &Hub{Server: server}
}

// MatchCreated notifies both members of a new match
func (h *Hub) MatchCreated(match models.Match) {
	h.Server.BroadcastToRoom("/", "user:"+match.UserA, "matchCreated", match)
	h.Server.BroadcastToRoom("/", "user:"+match.UserB, "matchCreated", match)
}

// VoteCast notifies the sharer's family room about a new or changed vote
func (h *Hub) VoteCast(profile models.SharedProfile, vote models.FamilyVote) {
	payload := map[string]interface{}{
		"sharedProfileId": profile.SharedProfileID,
		"status":          profile.Status,
		"memberId":        vote.MemberID,
		"vote":            vote.Vote,
	}
	h.Server.BroadcastToRoom("/", "family:"+profile.SharerID, "voteCast", payload)
}
