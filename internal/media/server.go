// Package media serves stored video, thumbnail and photo blobs over HTTP,
// streaming straight out of GridFS.
package media

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/12OneTwo12/upvy-sub004/internal/dbmongo"
)

type Server struct {
	storage *dbmongo.MediaStorage
	logger  zerolog.Logger
}

func NewServer(storage *dbmongo.MediaStorage, logger zerolog.Logger) *Server {
	return &Server{
		storage: storage,
		logger:  logger.With().Str("component", "media").Logger(),
	}
}

// Register mounts the media routes. Media is public read; uploads go through
// the content service.
func (s *Server) Register(r *mux.Router) {
	r.HandleFunc("/media/{fileId}", s.serveFile).Methods(http.MethodGet)
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	fileReader, mediaFile, err := s.storage.DownloadFile(r.Context(), fileID)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(mediaFile.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", mediaFile.Size))

	if _, err := io.Copy(w, fileReader); err != nil {
		s.logger.Error().Err(err).Str("file_id", fileID).Msg("error streaming file")
	}
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
