package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"agent-demos/internal/common/errors"
	"agent-demos/internal/common/logger"

	"github.com/gin-gonic/gin"
)

func (s *Server) runAgent(c *gin.Context) {
	agentID := c.Param("agent")

	runner, err := s.opts.Agents.Lookup(agentID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	body, err := readBody(c, s.opts.Server.MaxBodyBytes)
	if err != nil {
		abortWithError(c, err)
		return
	}

	out, err := runner.RunJSON(c.Request.Context(), body)
	if err != nil {
		abortWithError(c, err)
		return
	}

	log := logger.ForRequest(s.logger, agentID, c.GetString(requestIDKey))

	// Rendered before counting so an unserializable response is a failed run.
	payload, err := json.Marshal(out)
	if err != nil {
		log.Error("failed to encode demo response", map[string]interface{}{"error": err.Error()})
		abortWithError(c, errors.NewUnexpectedError(err))
		return
	}

	if _, err := s.opts.Counter.Increment(c.Request.Context(), agentID); err != nil {
		log.Warn("failed to record demo run", map[string]interface{}{"error": err.Error()})
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

func readBody(c *gin.Context, limit int64) ([]byte, error) {
	reader := io.Reader(c.Request.Body)
	if limit > 0 {
		reader = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.NewInvalidPayloadError(stderrors.New("request body too large"))
		}
		return nil, errors.NewInvalidPayloadError(err)
	}
	return body, nil
}

func (s *Server) listAgents(c *gin.Context) {
	c.JSON(http.StatusOK, s.opts.Agents.Registry())
}

// agentCard describes the service in the shape agent directories crawl.
func (s *Server) agentCard(c *gin.Context) {
	reg := s.opts.Agents.Registry()

	skills := make([]gin.H, 0, len(reg.Agents))
	for _, a := range reg.Agents {
		skills = append(skills, gin.H{
			"id":          a.ID,
			"name":        a.DisplayName,
			"description": a.Description,
			"tags":        a.Tags,
			"endpoint":    a.Endpoint,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"name":               s.opts.App.Name,
		"description":        "Simulated AI agent demos driven by fixed rules and templates.",
		"version":            s.opts.App.Version,
		"defaultInputModes":  []string{"application/json"},
		"defaultOutputModes": []string{"application/json"},
		"skills":             skills,
	})
}

func (s *Server) stats(c *gin.Context) {
	counts, err := s.opts.Counter.Snapshot(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to read demo stats", map[string]interface{}{"error": err.Error()})
		abortWithError(c, errors.NewUnexpectedError(err))
		return
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	c.JSON(http.StatusOK, gin.H{"runs": counts, "total": total})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string, len(s.opts.Checks))
	ready := true
	for name, check := range s.opts.Checks {
		if err := check(ctx); err != nil {
			checks[name] = err.Error()
			ready = false
			continue
		}
		checks[name] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "checks": checks})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "checks": checks})
}
