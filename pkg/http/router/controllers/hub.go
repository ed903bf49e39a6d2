package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sort"
	"sync"

	"github.com/bagas-w/gridway/pkg/concurrent"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

const defaultPlaybackBatch = 16

type User struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

func (u *User) readRequest() (*playbackRequest, error) {
	u.io.Lock()
	defer u.io.Unlock()

	h, r, err := wsutil.NextReader(u.conn, ws.StateServerSide)
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		return nil, wsutil.ControlFrameHandler(u.conn, ws.StateServerSide)(h, r)
	}

	req := &playbackRequest{}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(req); err != nil {
		return nil, err
	}
	return req, nil
}

// StreamPlayback reads one playback request, runs the search synchronously,
// then replays the captured visitation order as batched frames followed by a
// final summary message. Determinism of the search itself is untouched — the
// animation is a replay, not a stepped execution.
func (u *User) StreamPlayback() error {
	req, err := u.readRequest()
	if err != nil {
		u.conn.Close()
		return err
	}

	if req == nil {
		return nil
	}

	validate := validator.New()

	if err := validate.Struct(req); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		errResp := envelope{"error": map[string]string{
			"code":    http.StatusText(http.StatusBadRequest),
			"message": fmt.Sprintf("validation error: %v", vvString),
		}}
		return u.write(errResp)
	}

	summary, err := u.hub.pathfinderService.Search(req.Algorithm,
		req.StartRow, req.StartCol, req.EndRow, req.EndCol)
	if err != nil {
		errResp := envelope{"error": map[string]string{
			"code":    http.StatusText(http.StatusBadRequest),
			"message": err.Error(),
		}}
		return u.write(errResp)
	}

	batch := req.BatchSize
	if batch <= 0 {
		batch = defaultPlaybackBatch
	}

	for from := 0; from < len(summary.Order); from += batch {
		to := from + batch
		if to > len(summary.Order) {
			to = len(summary.Order)
		}
		frame := envelope{"data": map[string]interface{}{
			"type":  "frame",
			"cells": summary.Order[from:to],
		}}
		if err := u.write(frame); err != nil {
			return err
		}
	}

	final := envelope{"data": map[string]interface{}{
		"type":       "path",
		"algorithm":  summary.Algorithm,
		"path":       summary.Path,
		"found":      summary.Found,
		"total_cost": summary.TotalCost,
		"expanded":   summary.Expanded,
	}}
	return u.write(final)
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

type Hub struct {
	mu                sync.RWMutex
	seq               uint
	us                []*User
	ns                map[uint]*User
	pathfinderService PathfinderService

	pool *concurrent.WorkerPool[int, int]
}

func NewHub(pool *concurrent.WorkerPool[int, int], pathfinderService PathfinderService) *Hub {
	hub := &Hub{
		pool:              pool,
		ns:                make(map[uint]*User),
		us:                make([]*User, 0),
		pathfinderService: pathfinderService,
	}

	return hub
}

func (h *Hub) Register(conn net.Conn) *User {
	user := &User{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.us = append(h.us, user)

	h.seq++
	h.mu.Unlock()

	return user
}

func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	if _, oki := h.ns[user.id]; !oki {
		h.mu.Unlock()
		return
	}
	delete(h.ns, user.id)

	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= user.id
	})

	newUs := make([]*User, len(h.us)-1)
	copy(newUs[:i], h.us[:i])
	copy(newUs[i:], h.us[i+1:])
	h.us = newUs

	h.mu.Unlock()
}

func (h *Hub) RemoveAllUser() {
	h.mu.RLock()
	users := make([]*User, len(h.us))
	copy(users, h.us)
	h.mu.RUnlock()

	for _, user := range users {
		h.Remove(user)
	}
}
