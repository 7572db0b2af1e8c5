package router

import (
	"database/sql"
	"net/http"

	noteHandler "notesvc/internal/note"
	"notesvc/internal/note/repository"
	"notesvc/internal/note/service"
	"notesvc/middleware"
	"notesvc/socket"
)

func Setup(db *sql.DB, hub *socket.Hub) http.Handler {
	mux := http.NewServeMux()

	// Liveness, the only unauthenticated route.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Backend is running"))
	})

	// WebSocket feed
	wsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.Context().Value(middleware.PrincipalKey).(middleware.Principal)
		socket.ServeWs(hub, w, r, p.ID)
	})
	mux.Handle("GET /ws", middleware.AuthMiddleware(wsHandler))

	// REST API
	noteRepo := repository.NewNoteRepository(db)
	noteService := service.NewNoteService(noteRepo, hub)
	notes := noteHandler.NewNoteHandler(noteService)
	auth := middleware.AuthMiddleware

	// Both bases serve the same contract: the local server historically
	// exposed /api/notes while the hosted variant exposed /notes.
	mux.Handle("GET /notes", auth(http.HandlerFunc(notes.GetNotes)))
	mux.Handle("POST /notes", auth(http.HandlerFunc(notes.CreateNote)))
	mux.Handle("DELETE /notes/{id}", auth(http.HandlerFunc(notes.DeleteNote)))
	mux.Handle("GET /api/notes", auth(http.HandlerFunc(notes.GetNotes)))
	mux.Handle("POST /api/notes", auth(http.HandlerFunc(notes.CreateNote)))
	mux.Handle("DELETE /api/notes/{id}", auth(http.HandlerFunc(notes.DeleteNote)))

	return middleware.CORSMiddleware(mux)
}
