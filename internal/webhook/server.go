// Package webhook exposes the HTTP endpoint Discord delivers interaction
// payloads to. Every request is signature-checked before it is parsed;
// anything that fails verification is rejected with 401 so Discord's
// endpoint validation passes.
package webhook

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Handler answers the interaction types the bot supports. The manager
// package provides the production implementation.
type Handler interface {
	HandleApplicationCommand(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse
	HandleAutocomplete(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse
	HandleModalSubmit(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse
	HandleComponent(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse
}

// Server is the interaction webhook endpoint.
type Server struct {
	addr      string
	publicKey ed25519.PublicKey
	handler   Handler
	log       zerolog.Logger
}

// NewServer builds a Server listening on addr, verifying payloads against
// the application's public key.
func NewServer(addr string, publicKey ed25519.PublicKey, handler Handler, log zerolog.Logger) *Server {
	return &Server{addr: addr, publicKey: publicKey, handler: handler, log: log}
}

// Run serves until ctx is cancelled, then shuts down gracefully. It blocks;
// run it in a goroutine.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.log.Info().Msg("shutting down webhook server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warn().Err(err).Msg("webhook server shutdown")
		}
	}()

	s.log.Info().Str("addr", s.addr).Msg("webhook server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Custom-command interaction endpoint. Discord POSTs here; there is nothing to see.\n"))
	case http.MethodPost:
		s.handleInteraction(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// ServeHTTP lets the server be mounted directly in tests and behind other
// muxes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handleRoot(w, r)
}

func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, s.publicKey) {
		s.log.Warn().Str("remote", r.RemoteAddr).Msg("rejected unsigned interaction")
		http.Error(w, "invalid request signature", http.StatusUnauthorized)
		return
	}

	var interaction discordgo.Interaction
	if err := json.NewDecoder(r.Body).Decode(&interaction); err != nil {
		s.log.Warn().Err(err).Msg("undecodable interaction payload")
		http.Error(w, "malformed payload", http.StatusBadRequest)
		return
	}

	resp := s.dispatch(r.Context(), &interaction)
	if resp == nil {
		http.Error(w, "unsupported interaction type", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Warn().Err(err).Msg("failed to write interaction response")
	}
}

func (s *Server) dispatch(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	switch i.Type {
	case discordgo.InteractionPing:
		return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}
	case discordgo.InteractionApplicationCommand:
		return s.handler.HandleApplicationCommand(ctx, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		return s.handler.HandleAutocomplete(ctx, i)
	case discordgo.InteractionModalSubmit:
		return s.handler.HandleModalSubmit(ctx, i)
	case discordgo.InteractionMessageComponent:
		return s.handler.HandleComponent(ctx, i)
	default:
		return nil
	}
}
