package webhook

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

type stubHandler struct {
	lastType discordgo.InteractionType
}

func (h *stubHandler) respond(i *discordgo.Interaction) *discordgo.InteractionResponse {
	h.lastType = i.Type
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: "handled"},
	}
}

func (h *stubHandler) HandleApplicationCommand(_ context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	return h.respond(i)
}

func (h *stubHandler) HandleAutocomplete(_ context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	return h.respond(i)
}

func (h *stubHandler) HandleModalSubmit(_ context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	return h.respond(i)
}

func (h *stubHandler) HandleComponent(_ context.Context, i *discordgo.Interaction) *discordgo.InteractionResponse {
	return h.respond(i)
}

func newTestServer(t *testing.T) (*Server, ed25519.PrivateKey, *stubHandler) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	handler := &stubHandler{}
	return NewServer("127.0.0.1:0", pub, handler, zerolog.Nop()), priv, handler
}

// sign produces the signature headers Discord attaches to webhook deliveries.
func sign(req *http.Request, priv ed25519.PrivateKey, body string) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := ed25519.Sign(priv, []byte(timestamp+body))
	req.Header.Set("X-Signature-Ed25519", hex.EncodeToString(signature))
	req.Header.Set("X-Signature-Timestamp", timestamp)
}

func signedPost(t *testing.T, srv *Server, priv ed25519.PrivateKey, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	sign(req, priv, body)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestPingGetsPong(t *testing.T) {
	srv, priv, _ := newTestServer(t)
	rec := signedPost(t, srv, priv, `{"type":1}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	var resp discordgo.InteractionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Type != discordgo.InteractionResponsePong {
		t.Fatalf("expected pong, got type %d", resp.Type)
	}
}

func TestUnsignedRequestRejected(t *testing.T) {
	srv, _, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"type":1}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if handler.lastType != 0 {
		t.Fatalf("handler must not run for unsigned requests")
	}
}

func TestWrongKeySignatureRejected(t *testing.T) {
	srv, _, _ := newTestServer(t)
	_, otherPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	rec := signedPost(t, srv, otherPriv, `{"type":1}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestMalformedPayloadRejected(t *testing.T) {
	srv, priv, _ := newTestServer(t)
	rec := signedPost(t, srv, priv, `{"type":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDispatchByInteractionType(t *testing.T) {
	srv, priv, handler := newTestServer(t)

	cases := []struct {
		body string
		want discordgo.InteractionType
	}{
		{`{"type":2,"data":{"id":"1","name":"command"}}`, discordgo.InteractionApplicationCommand},
		{`{"type":3,"data":{"custom_id":"command-edit-1","component_type":2}}`, discordgo.InteractionMessageComponent},
		{`{"type":4,"data":{"id":"1","name":"command"}}`, discordgo.InteractionApplicationCommandAutocomplete},
		{`{"type":5,"data":{"custom_id":"command-create-new"}}`, discordgo.InteractionModalSubmit},
	}
	for _, tc := range cases {
		rec := signedPost(t, srv, priv, tc.body)
		if rec.Code != http.StatusOK {
			t.Fatalf("type %d: status = %d, body %q", tc.want, rec.Code, rec.Body.String())
		}
		if handler.lastType != tc.want {
			t.Fatalf("dispatched type = %d, want %d", handler.lastType, tc.want)
		}
	}
}

func TestGetServesBlurb(t *testing.T) {
	srv, _, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "interaction endpoint") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}
