package checkin

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"ticketops/internal/shared/utils/response"
	"ticketops/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ScanRequest struct {
	Code string `json:"code" binding:"required"`
}

// Manager keeps one session per operator so the in-flight guard and
// debounce window apply per scanning console, not globally.
type Manager struct {
	checker      Checker
	log          *logger.Logger
	debounce     time.Duration
	displayDelay time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(checker Checker, debounce, displayDelay time.Duration, log *logger.Logger) *Manager {
	return &Manager{
		checker:      checker,
		log:          log,
		debounce:     debounce,
		displayDelay: displayDelay,
		sessions:     make(map[string]*Session),
	}
}

func (m *Manager) SessionFor(operatorID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[operatorID]; ok {
		return session
	}
	session := NewSession(m.checker, operatorID, m.debounce, m.displayDelay, m.log)
	m.sessions[operatorID] = session
	return session
}

func (m *Manager) CloseSession(operatorID string) {
	m.mu.Lock()
	session, ok := m.sessions[operatorID]
	delete(m.sessions, operatorID)
	m.mu.Unlock()

	if ok {
		session.Close()
	}
}

type Controller interface {
	Scan(c *gin.Context)
	ResetSession(c *gin.Context)
}

type controller struct {
	manager *Manager
}

func NewController(manager *Manager) Controller {
	return &controller{manager: manager}
}

func operatorID(c *gin.Context) string {
	if rawID, exists := c.Get("user_id"); exists {
		if id, ok := rawID.(string); ok {
			return id
		}
	}
	return ""
}

func (ctrl *controller) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	session := ctrl.manager.SessionFor(operatorID(c))

	result, err := session.Submit(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrScanInFlight):
			response.RespondJSON(c, "error", http.StatusTooManyRequests, "A scan is already being processed", nil, nil)
		case errors.Is(err, ErrScanDebounced):
			response.RespondJSON(c, "error", http.StatusTooManyRequests, "Code was just scanned", nil, nil)
		case errors.Is(err, ErrEmptyCode):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Code is empty", nil, nil)
		default:
			response.RespondError(c, err)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, result.Message, result, nil)
}

func (ctrl *controller) ResetSession(c *gin.Context) {
	ctrl.manager.CloseSession(operatorID(c))
	response.RespondJSON(c, "success", http.StatusOK, "Scan session reset", nil, nil)
}
