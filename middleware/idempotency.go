package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"tradehub/db"
	"tradehub/models"
	"tradehub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func computeRequestHash(r *http.Request, bodyBytes []byte) string {
	h := sha256.New()
	h.Write([]byte(r.Method + ":" + r.URL.Path + ":"))
	h.Write(bodyBytes)
	return hex.EncodeToString(h.Sum(nil))
}

// captureResponseWriter wraps http.ResponseWriter to capture status and body.
type captureResponseWriter struct {
	w           http.ResponseWriter
	statusCode  int
	buf         bytes.Buffer
	wroteHeader bool
}

func newCaptureResponseWriter(w http.ResponseWriter) *captureResponseWriter {
	return &captureResponseWriter{w: w, statusCode: http.StatusOK}
}

func (c *captureResponseWriter) Header() http.Header {
	return c.w.Header()
}

func (c *captureResponseWriter) WriteHeader(statusCode int) {
	if !c.wroteHeader {
		c.statusCode = statusCode
		c.w.WriteHeader(statusCode)
		c.wroteHeader = true
	}
}

func (c *captureResponseWriter) Write(b []byte) (int, error) {
	c.buf.Write(b)
	return c.w.Write(b)
}

// helper to detect duplicate key errors from Mongo insert
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if we, ok := err.(mongo.WriteException); ok {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}

// Idempotent guards a mutating route against duplicate submission when the
// client provides an Idempotency-Key header.
// Behavior:
//   - No header: pass-through.
//   - First request for a key: run the handler, capture and store the response.
//   - Replay with the same key and body: return the stored response.
//   - Same key, different body: 409 Conflict.
//   - Same key, response not yet stored (in flight): run the handler.
func Idempotent(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		key := r.Header.Get("Idempotency-Key")
		if key == "" {
			next(w, r, ps)
			return
		}

		// Limit body size to 1 MB to prevent memory issues
		bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		reqHash := computeRequestHash(r, bodyBytes)
		now := time.Now()
		rec := models.IdempotencyRecord{
			Key:         key,
			Method:      r.Method,
			Path:        r.URL.Path,
			RequestHash: reqHash,
			CreatedAt:   now,
			ExpiresAt:   now.Add(24 * time.Hour),
		}

		ctx := r.Context()
		_, err = db.IdempotencyCollection.InsertOne(ctx, rec)
		if err == nil {
			crw := newCaptureResponseWriter(w)
			next(crw, r, ps)

			var parsed interface{}
			if err := json.Unmarshal(crw.buf.Bytes(), &parsed); err != nil {
				parsed = crw.buf.String()
			}
			_, _ = db.IdempotencyCollection.UpdateOne(ctx,
				bson.M{"key": key},
				bson.M{"$set": bson.M{"response": bson.M{
					"status": crw.statusCode,
					"body":   parsed,
				}}},
			)
			return
		}

		if !isDuplicateKeyError(err) {
			http.Error(w, "idempotency lookup error", http.StatusInternalServerError)
			return
		}

		var existing models.IdempotencyRecord
		if err := db.IdempotencyCollection.FindOne(ctx, bson.M{"key": key}).Decode(&existing); err != nil {
			http.Error(w, "idempotency lookup error", http.StatusInternalServerError)
			return
		}

		if existing.RequestHash != reqHash {
			http.Error(w, "idempotency-key conflict", http.StatusConflict)
			return
		}

		if existing.Response != nil {
			statusFloat, _ := existing.Response["status"].(float64)
			status := int(statusFloat)
			if status == 0 {
				if s, ok := existing.Response["status"].(int32); ok {
					status = int(s)
				}
			}
			utils.RespondWithJSON(w, status, existing.Response["body"])
			return
		}

		next(w, r, ps)
	}
}
