/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"dirpx.dev/picocodes"
	"dirpx.dev/picocodes/adapter"
	"dirpx.dev/picocodes/apis"
	"dirpx.dev/picocodes/info"
	"dirpx.dev/picocodes/status"
)

// Handler serves read-only lookups:
//
//	GET /v1/status?value=0x27      value to name (decimal or 0x-hex)
//	GET /v1/status?name=PICO_BUSY  name to value
//	GET /v1/info?name=PICO_CAL_DATE
//	GET /v1/tables/{table}         "status" or "info", ordered by value
//
// Names are matched exactly, as in the registries.
type Handler struct {
	w      Writer
	logger *slog.Logger
	mux    *http.ServeMux
}

// NewHandler builds a Handler. A nil logger discards logs.
func NewHandler(m apis.Mapper, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Handler{w: Writer{Mapper: m}, logger: logger, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /v1/status", h.handleStatus)
	h.mux.HandleFunc("GET /v1/info", h.handleInfo)
	h.mux.HandleFunc("GET /v1/tables/{table}", h.handleTable)
	return h
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(rw, r)
}

func (h *Handler) handleStatus(rw http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawValue, rawName := q.Get("value"), q.Get("name")

	switch {
	case q.Has("value") && q.Has("name"):
		h.badRequest(rw, r, "pass either value or name, not both")
	case q.Has("value"):
		v, err := strconv.ParseUint(rawValue, 0, 32)
		if err != nil {
			h.badRequest(rw, r, "value must be a 32-bit unsigned integer")
			return
		}
		name, err := status.Name(uint32(v))
		if err != nil {
			h.fail(rw, r, err)
			return
		}
		h.ok(rw, r, picocodes.TableStatus, picocodes.Entry{Name: name, Value: uint32(v)})
	case q.Has("name"):
		v, err := status.Value(rawName)
		if err != nil {
			h.fail(rw, r, err)
			return
		}
		h.ok(rw, r, picocodes.TableStatus, picocodes.Entry{Name: rawName, Value: v})
	default:
		h.badRequest(rw, r, "missing value or name query parameter")
	}
}

func (h *Handler) handleInfo(rw http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("name") {
		h.badRequest(rw, r, "missing name query parameter")
		return
	}
	name := q.Get("name")
	v, err := info.Value(name)
	if err != nil {
		h.fail(rw, r, err)
		return
	}
	h.ok(rw, r, picocodes.TableInfo, picocodes.Entry{Name: name, Value: v})
}

func (h *Handler) handleTable(rw http.ResponseWriter, r *http.Request) {
	var (
		table   string
		entries []picocodes.Entry
	)
	switch r.PathValue("table") {
	case "status":
		table, entries = picocodes.TableStatus, status.Entries()
	case "info":
		table, entries = picocodes.TableInfo, info.Entries()
	default:
		h.logWrite(r, h.w.WriteView(rw, http.StatusNotFound, apis.ErrorView{Message: "unknown table"}))
		return
	}

	list := make([]any, 0, len(entries))
	for _, e := range entries {
		list = append(list, codeFields(adapter.ToCodeView(table, e)))
	}
	h.logWrite(r, writeStruct(rw, http.StatusOK, map[string]any{
		"table":   table,
		"count":   len(entries),
		"entries": list,
	}))
}

func (h *Handler) ok(rw http.ResponseWriter, r *http.Request, table string, e picocodes.Entry) {
	h.logWrite(r, writeStruct(rw, http.StatusOK, codeFields(adapter.ToCodeView(table, e))))
}

func (h *Handler) fail(rw http.ResponseWriter, r *http.Request, err error) {
	h.logger.Debug("lookup failed", "path", r.URL.Path, "error", err)
	h.logWrite(r, h.w.Write(rw, err))
}

func (h *Handler) badRequest(rw http.ResponseWriter, r *http.Request, msg string) {
	h.logWrite(r, h.w.WriteView(rw, http.StatusBadRequest, apis.ErrorView{Message: msg}))
}

func (h *Handler) logWrite(r *http.Request, err error) {
	if err != nil {
		h.logger.Error("write response", "path", r.URL.Path, "error", err)
	}
}

func codeFields(v apis.CodeView) map[string]any {
	return map[string]any{
		"table": v.Table,
		"name":  v.Name,
		"value": v.Value,
		"hex":   v.Hex,
	}
}
