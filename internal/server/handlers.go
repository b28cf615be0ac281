package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lsu-datastore/datastore/internal/tabular"
	"github.com/lsu-datastore/datastore/pkg/types"
)

// tableJSON is the wire form of a DataTable: column order plus row-major
// cells, numbers as JSON numbers and everything else as strings.
type tableJSON struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func toTableJSON(t types.DataTable) tableJSON {
	out := tableJSON{Columns: t.Columns, Rows: make([][]any, 0, t.NumRows())}
	if out.Columns == nil {
		out.Columns = []string{}
	}
	for _, row := range t.Rows {
		cells := make([]any, len(row))
		for i, v := range row {
			if v.Kind == types.KindNumber {
				cells[i] = v.Num
			} else {
				cells[i] = v.Text
			}
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}

func fromTableJSON(in tableJSON) (types.DataTable, error) {
	table := types.NewDataTable(in.Columns)
	for _, cells := range in.Rows {
		row := make([]types.Value, len(cells))
		for i, c := range cells {
			switch v := c.(type) {
			case string:
				row[i] = types.TextValue(v)
			case float64:
				row[i] = types.NumberValue(v)
			case nil:
				row[i] = types.TextValue(types.Sentinel)
			default:
				return types.DataTable{}, fmt.Errorf("%w: unsupported cell type", types.ErrRaggedTable)
			}
		}
		if err := table.AppendRow(row); err != nil {
			return types.DataTable{}, err
		}
	}
	return table, nil
}

func (s *Server) handleListFiles(w http.ResponseWriter, _ *http.Request) {
	files, err := s.store.ListFiles()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

// handleUpload ingests a raw CSV request body. Filename and user id arrive as
// query parameters; the declared size is the body length.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON("user_id must be an integer"))
		return
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON("reading request body"))
		return
	}

	fileID, err := s.store.Ingest(filename, content, int64(len(content)), format, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"file_id": fileID})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	fileID, ok := s.fileID(w, r)
	if !ok {
		return
	}
	table, err := s.store.Reconstruct(fileID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTableJSON(table))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	fileID, ok := s.fileID(w, r)
	if !ok {
		return
	}

	var in tableJSON
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON("decoding table JSON"))
		return
	}
	table, err := fromTableJSON(in)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Update(fileID, table); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	fileID, ok := s.fileID(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(fileID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	fileID, ok := s.fileID(w, r)
	if !ok {
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = tabular.FormatCSV
	}

	data, err := s.store.Export(fileID, format)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if format == tabular.FormatJSON {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/csv")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	matches, err := s.store.Search(r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON("decoding credentials"))
		return
	}

	ok, err := s.store.CheckCredentials(creds.Username, creds.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": ok})
}

// fileID parses the {id} route parameter. Writes a 400 and returns false on
// garbage input.
func (s *Server) fileID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON("file id must be an integer"))
		return 0, false
	}
	return id, true
}

// validationErrs maps to 400; everything else surfacing from the store is a
// 500.
var validationErrs = []error{
	types.ErrInvalidFilename,
	types.ErrInvalidSize,
	types.ErrInvalidUser,
	types.ErrInvalidUsername,
	types.ErrInvalidPassword,
	types.ErrEmptyTable,
	types.ErrRaggedTable,
	types.ErrEmptyQuery,
	types.ErrUnknownFormat,
	types.ErrMalformedCSV,
	types.ErrUserExists,
	types.ErrUnknownUser,
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	for _, sentinel := range validationErrs {
		if errors.Is(err, sentinel) {
			writeJSON(w, http.StatusBadRequest, errorJSON(err.Error()))
			return
		}
	}
	s.log.Errorw("internal error", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorJSON("internal error"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}
