package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/hlog"
)

var errBadRange = errors.New("malformed range header")

// byteRange is a half-open request resolved against a known file size.
type byteRange struct {
	start int64
	end   int64 // inclusive
}

func (b byteRange) length() int64 { return b.end - b.start + 1 }

// parseRange understands single ranges of the form "bytes=start-end"
// where end may be omitted. Suffix ranges ("bytes=-500") and multipart
// ranges are rejected.
func parseRange(header string, size int64) (byteRange, error) {
	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return byteRange{}, errBadRange
	}
	if strings.Contains(spec, ",") {
		return byteRange{}, errBadRange
	}
	startStr, endStr, ok := strings.Cut(spec, "-")
	if !ok || startStr == "" {
		return byteRange{}, errBadRange
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return byteRange{}, errBadRange
	}

	end := size - 1
	if endStr != "" {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil || end < 0 {
			return byteRange{}, errBadRange
		}
		if end > size-1 {
			end = size - 1
		}
	}

	if start >= size || start > end {
		return byteRange{}, errBadRange
	}
	return byteRange{start: start, end: end}, nil
}

// handleVideo streams trial video, honoring single byte-range requests
// so seeking works in browser players.
func (s *Server) handleVideo(w http.ResponseWriter, r *http.Request) {
	trialID := r.PathValue("trialId")
	log := hlog.FromRequest(r)

	path, err := s.provider.VideoPath(trialID)
	if err != nil {
		writeError(w, http.StatusNotFound, "video not found", nil)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			writeError(w, http.StatusNotFound, "video not found", nil)
			return
		}
		log.Error().Err(err).Msg("open video")
		writeError(w, http.StatusInternalServerError, "failed to open video", nil)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Error().Err(err).Msg("stat video")
		writeError(w, http.StatusInternalServerError, "failed to stat video", nil)
		return
	}
	size := info.Size()

	w.Header().Set("Content-Type", "video/mp4")
	w.Header().Set("Accept-Ranges", "bytes")

	rangeHeader := r.Header.Get("Range")
	if rangeHeader == "" {
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, f); err != nil {
			log.Debug().Err(err).Msg("video stream aborted")
		}
		return
	}

	br, err := parseRange(rangeHeader, size)
	if err != nil {
		w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", size))
		writeError(w, http.StatusRequestedRangeNotSatisfiable, "unsatisfiable range", map[string]any{
			"range": rangeHeader,
			"size":  size,
		})
		return
	}

	if _, err := f.Seek(br.start, io.SeekStart); err != nil {
		log.Error().Err(err).Msg("seek video")
		writeError(w, http.StatusInternalServerError, "failed to seek video", nil)
		return
	}

	w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", br.start, br.end, size))
	w.Header().Set("Content-Length", strconv.FormatInt(br.length(), 10))
	w.WriteHeader(http.StatusPartialContent)
	if _, err := io.CopyN(w, f, br.length()); err != nil {
		log.Debug().Err(err).Msg("video range stream aborted")
	}
}
