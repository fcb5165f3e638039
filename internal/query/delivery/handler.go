package delivery

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"howler-relay/internal/query/repository"

	"github.com/gin-gonic/gin"
)

// compiledQuery is the serialized form of a query built by the upstream
// app's query builder: the final SQL plus its positional parameters.
type compiledQuery struct {
	SQL        string        `json:"sql"`
	Parameters []interface{} `json:"parameters"`
}

type QueryHandler struct {
	queries      repository.QueryRepository
	debugExplain bool
}

func NewQueryHandler(queries repository.QueryRepository, debugExplain bool) *QueryHandler {
	return &QueryHandler{queries: queries, debugExplain: debugExplain}
}

// RelayGet executes a compiled query passed in the q query parameter.
func (h *QueryHandler) RelayGet(c *gin.Context) {
	h.relay(c, []byte(c.Query("q")))
}

// RelayPost executes a compiled query passed as the request body.
func (h *QueryHandler) RelayPost(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	h.relay(c, body)
}

func (h *QueryHandler) relay(c *gin.Context, raw []byte) {
	query, ok := parseCompiledQuery(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if h.debugExplain {
		h.logExplain(c, query)
	}

	rows, err := h.queries.Execute(c.Request.Context(), query.SQL, query.Parameters)
	if err != nil {
		log.Printf("[QUERY] relay failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *QueryHandler) logExplain(c *gin.Context, query *compiledQuery) {
	log.Printf("[QUERY] compiled query: %s", query.SQL)
	// EXPLAIN does not apply to these
	if strings.HasPrefix(query.SQL, "SHOW") || strings.HasPrefix(query.SQL, "DESCRIBE") {
		return
	}
	rows, err := h.queries.Explain(c.Request.Context(), query.SQL, query.Parameters)
	if err != nil {
		log.Printf("[QUERY] explain failed: %v", err)
		return
	}
	log.Printf("[QUERY] explain: %v", rows)
}

func parseCompiledQuery(raw []byte) (*compiledQuery, bool) {
	var query compiledQuery
	if err := json.Unmarshal(raw, &query); err != nil {
		log.Printf("[QUERY] unparseable compiled query: %v", err)
		return nil, false
	}
	if query.SQL == "" {
		return nil, false
	}
	return &query, true
}
