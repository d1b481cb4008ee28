package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const msgpackContentType = "application/msgpack"

// respond writes payload as indented JSON, or as msgpack when the client
// asks for it. Both encodings use the json field names.
func respond(w http.ResponseWriter, r *http.Request, status int, payload any) {
	var (
		body        []byte
		contentType string
		err         error
	)
	if strings.Contains(r.Header.Get("Accept"), msgpackContentType) {
		body, err = encodeMsgpack(payload)
		contentType = msgpackContentType
	} else {
		body, err = json.MarshalIndent(payload, "", "  ")
		contentType = "application/json; charset=utf-8"
	}
	if err != nil {
		log.Error("Failed to encode response", "error", err, "request_id", requestIDFromContext(r.Context()))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func encodeMsgpack(payload any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// queryParam returns the trimmed value of a query parameter.
func queryParam(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
