package connectionhub

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
	"quickpay-backend/db"
	notificationstore "quickpay-backend/lib/notification/store"
	notificationapimodels "quickpay-backend/models/api/notification"
	wsmodels "quickpay-backend/models/ws"
)

// unread notifications replayed to a freshly connected client
const replayLimit = 5

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
	store   notificationstore.Provider
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	sess, ok := i.clients[userID]
	if ok {
		delete(i.clients, userID)
	}
	i.mu.Unlock()
	if !ok {
		return
	}
	sess.stop()
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
	go i.sendUnread(userID)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	sess, ok := i.clients[msg.ToUserID]
	i.mu.RUnlock()
	if ok {
		sess.enqueue(msg)
	}
}

func (i *impl) SendClose(userID string) {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

func (i *impl) sendUnread(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.GetList(userID, notificationapimodels.ListFilter{Limit: replayLimit, UnreadOnly: true})
	if err != nil {
		logger.WithError(err).Error("unread notifications loading failed")
		return
	}
	// oldest first
	for idx := len(list) - 1; idx >= 0; idx-- {
		if !i.IsConnected(userID) {
			return
		}
		i.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     list[idx].CreatedAt.Format(time.RFC3339),
			Code:     wsmodels.CodeNotification,
			Msg:      list[idx].Message,
		})
	}
}
