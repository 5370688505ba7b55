package businessflow

import (
	"context"

	"github.com/budun/backoffice/app/dto"
	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
)

// AgentFlow handles sales agent listing
type AgentFlow interface {
	ListAgents(ctx context.Context, status string) (*dto.AgentListResponse, error)
}

// AgentFlowImpl implements the agent business flow
type AgentFlowImpl struct {
	agentRepo repository.SalesAgentRepository
}

// NewAgentFlow creates a new agent flow instance
func NewAgentFlow(agentRepo repository.SalesAgentRepository) AgentFlow {
	return &AgentFlowImpl{
		agentRepo: agentRepo,
	}
}

// ListAgents returns agents filtered by status, active agents by default
func (af *AgentFlowImpl) ListAgents(ctx context.Context, status string) (*dto.AgentListResponse, error) {
	if status == "" {
		status = models.StatusActive
	}

	agents, err := af.agentRepo.ListByStatus(ctx, status, 0, 0)
	if err != nil {
		return nil, NewBusinessError("AGENT_LIST_FAILED", "Failed to list agents", err)
	}

	response := &dto.AgentListResponse{
		Agents: make([]dto.AgentDTO, 0, len(agents)),
		Total:  int64(len(agents)),
	}
	for _, agent := range agents {
		response.Agents = append(response.Agents, ToAgentDTO(*agent))
	}

	return response, nil
}
