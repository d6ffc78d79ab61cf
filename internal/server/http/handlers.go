package httpserver

import (
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/rzbill/uniq/pkg/guid"
	"github.com/rzbill/uniq/pkg/uid"
)

var json = jsoniter.ConfigFastest

// uidPayload is the JSON shape of one UID.
type uidPayload struct {
	Text   string `json:"text"`
	Hex    string `json:"hex"`
	Unique int32  `json:"unique"`
	Time   int64  `json:"time"`
	Count  int16  `json:"count"`
}

func uidToPayload(u uid.UID) uidPayload {
	return uidPayload{
		Text:   u.String(),
		Hex:    hex.EncodeToString(u.Bytes()),
		Unique: u.Unique(),
		Time:   u.Time(),
		Count:  u.Count(),
	}
}

// guidPayload is the JSON shape of one GUID.
type guidPayload struct {
	Text string     `json:"text"`
	Hex  string     `json:"hex"`
	Addr string     `json:"addr"`
	UID  uidPayload `json:"uid"`
}

func guidToPayload(g guid.GUID) guidPayload {
	addr := g.Addr()
	return guidPayload{
		Text: g.String(),
		Hex:  hex.EncodeToString(g.Bytes()),
		Addr: hex.EncodeToString(addr[:]),
		UID:  uidToPayload(g.UID()),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.rt.CheckHealth(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_serving"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.rt.Stats())
}

type newReq struct {
	Count int `json:"count"`
}

func (s *Server) handleNewUIDs(w http.ResponseWriter, r *http.Request) {
	n, ok := s.decodeCount(w, r)
	if !ok {
		return
	}
	out := make([]uidPayload, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, uidToPayload(s.rt.UIDs().Next(r.Context())))
	}
	writeJSON(w, http.StatusOK, map[string]any{"uids": out})
}

func (s *Server) handleNewGUIDs(w http.ResponseWriter, r *http.Request) {
	n, ok := s.decodeCount(w, r)
	if !ok {
		return
	}
	out := make([]guidPayload, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, guidToPayload(s.rt.GUIDs().Next(r.Context())))
	}
	writeJSON(w, http.StatusOK, map[string]any{"guids": out})
}

// decodeCount reads {"count":N}; an empty body or zero count means one. The
// count is capped by the configured MaxBatch.
func (s *Server) decodeCount(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON payload")
		return 0, false
	}
	n := req.Count
	if n == 0 {
		n = 1
	}
	maxBatch := s.rt.Config().MaxBatch
	if n < 0 || n > maxBatch {
		writeError(w, http.StatusBadRequest, "invalid_count",
			fmt.Sprintf("count must be between 1 and %d", maxBatch))
		return 0, false
	}
	return n, true
}

func (s *Server) handleWellKnown(w http.ResponseWriter, r *http.Request) {
	num, err := strconv.ParseInt(chi.URLParam(r, "num"), 10, 16)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_num", "num must be a 16-bit signed integer")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"uid": uidToPayload(uid.WellKnown(int16(num)))})
}

type parseReq struct {
	Text string `json:"text"`
	Hex  string `json:"hex"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON payload")
		return
	}
	switch {
	case req.Text != "" && req.Hex != "":
		writeError(w, http.StatusBadRequest, "invalid_input", "give either text or hex, not both")
	case req.Text != "":
		u, err := uid.Parse(req.Text)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_uid", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"uid": uidToPayload(u)})
	case req.Hex != "":
		raw, err := hex.DecodeString(req.Hex)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_hex", "hex must encode exactly 14 bytes")
			return
		}
		var u uid.UID
		if err := u.UnmarshalBinary(raw); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_hex", "hex must encode exactly 14 bytes")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"uid": uidToPayload(u)})
	default:
		writeError(w, http.StatusBadRequest, "invalid_input", "text or hex is required")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
