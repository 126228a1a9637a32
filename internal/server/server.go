package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/ThinkInAIXYZ/go-mcp/server"
	"github.com/tidwall/gjson"

	"mcp-nutriserve/internal/catalog"
	"mcp-nutriserve/internal/game"
	"mcp-nutriserve/internal/models"
	"mcp-nutriserve/internal/storage"
)

const Version = "1.0.0"

type Config struct {
	Transport string
	Host      string
	Port      int
	DBPath    string
}

// SessionStore persists game sessions and their served orders.
type SessionStore interface {
	SaveSession(sess *game.Session) error
	GetSession(id string) (*game.Session, error)
	SaveOrderResult(result *models.OrderResult) error
	GetOrderResults(sessionID string, limit int) ([]*models.OrderResult, error)
	Close() error
}

type toolHandler func(*protocol.CallToolRequest) (*protocol.CallToolResult, error)

type NutriServeServer struct {
	server     *server.Server
	httpServer *http.Server
	storage    SessionStore
	catalog    *catalog.Catalog
	config     *Config
	tools      map[string]toolHandler
	now        func() time.Time
}

var (
	errBadParams   = errors.New("invalid parameters")
	errUnknownFood = errors.New("unknown food")
	errUnknownCust = errors.New("unknown customer")
)

func NewNutriServeServer(cfg *Config) (*NutriServeServer, error) {
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	// Initialize database
	stor, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	s := newNutriServeServer(cfg, stor, cat)

	// Create MCP server (without transport, we'll handle HTTP manually)
	mcpServer, err := server.NewServer(
		nil, // We'll handle transport manually
		server.WithServerInfo(protocol.Implementation{
			Name:    "nutriserve",
			Version: Version,
		}),
	)
	if err != nil {
		stor.Close()
		return nil, fmt.Errorf("failed to create MCP server: %w", err)
	}
	s.server = mcpServer

	return s, nil
}

func newNutriServeServer(cfg *Config, stor SessionStore, cat *catalog.Catalog) *NutriServeServer {
	s := &NutriServeServer{
		storage: stor,
		catalog: cat,
		config:  cfg,
		now:     time.Now,
	}
	s.registerTools()

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHTTP)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return s
}

func (s *NutriServeServer) handleHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read body: %v", err), http.StatusBadRequest)
		return
	}

	// Route on the tool name before decoding the full request
	name := gjson.GetBytes(body, "name")
	if !name.Exists() {
		http.Error(w, "Missing tool name", http.StatusBadRequest)
		return
	}
	handler, ok := s.tools[name.String()]
	if !ok {
		http.Error(w, fmt.Sprintf("Unknown tool: %s", name.String()), http.StatusNotFound)
		return
	}

	var request protocol.CallToolRequest
	if err := json.Unmarshal(body, &request); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	result, err := handler(&request)
	if err != nil {
		log.Printf("Tool %s failed: %v", request.Name, err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadParams), errors.Is(err, game.ErrInvalidPortion):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrSessionNotFound), errors.Is(err, game.ErrItemNotFound),
		errors.Is(err, errUnknownFood), errors.Is(err, errUnknownCust):
		return http.StatusNotFound
	case errors.Is(err, game.ErrAlreadyServed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Start blocks serving HTTP until Stop is called or ctx is cancelled.
func (s *NutriServeServer) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.httpServer.Shutdown(context.Background())
	}()

	log.Printf("Starting nutriserve server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *NutriServeServer) Stop() error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(context.Background())
	}
	if s.storage != nil {
		if cerr := s.storage.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (s *NutriServeServer) createJSONResponse(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
