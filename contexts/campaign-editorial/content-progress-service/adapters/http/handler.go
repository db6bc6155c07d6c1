package httpadapter

import (
	"context"
	"log/slog"
	"math"
	"time"

	"campaignhub/contexts/campaign-editorial/content-progress-service/application/commands"
	"campaignhub/contexts/campaign-editorial/content-progress-service/application/queries"
	"campaignhub/contexts/campaign-editorial/content-progress-service/domain/entities"
	httptransport "campaignhub/contexts/campaign-editorial/content-progress-service/transport/http"
)

type Handler struct {
	CreateCampaign        commands.CreateCampaignUseCase
	UpdateCampaign        commands.UpdateCampaignUseCase
	ChangeStatus          commands.ChangeStatusUseCase
	DeleteCampaign        commands.DeleteCampaignUseCase
	AddContentItem        commands.AddContentItemUseCase
	TransitionContentItem commands.TransitionContentItemUseCase
	EditContentItem       commands.EditContentItemUseCase
	DeleteContentItem     commands.DeleteContentItemUseCase
	ListCampaigns         queries.ListCampaignsUseCase
	GetCampaign           queries.GetCampaignUseCase
	ListContentItems      queries.ListContentItemsUseCase
	ListStatusHistory     queries.ListStatusHistoryUseCase
	Logger                *slog.Logger
}

func (h Handler) CreateCampaignHandler(
	ctx context.Context,
	userID string,
	req httptransport.CreateCampaignRequest,
) (httptransport.CampaignResponse, error) {
	campaign, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		ActorID:        userID,
		Name:           req.Name,
		Objective:      req.Objective,
		TargetAudience: req.TargetAudience,
		Budget:         req.Budget,
		Channels:       append([]string(nil), req.Channels...),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         req.Status,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(campaign)}, nil
}

func (h Handler) ListCampaignsHandler(ctx context.Context, status string) (httptransport.ListCampaignsResponse, error) {
	items, err := h.ListCampaigns.Execute(ctx, queries.ListCampaignsQuery{Status: status})
	if err != nil {
		return httptransport.ListCampaignsResponse{}, err
	}
	result := make([]httptransport.CampaignSummaryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, httptransport.CampaignSummaryDTO{
			CampaignID: item.CampaignID,
			Name:       item.Name,
			StartDate:  item.StartDate,
			EndDate:    item.EndDate,
			Status:     string(item.Status),
			Progress:   roundProgress(item.Progress()),
			ItemCount:  len(item.ContentItems),
		})
	}
	return httptransport.ListCampaignsResponse{Items: result}, nil
}

func (h Handler) GetCampaignHandler(ctx context.Context, campaignID string) (httptransport.CampaignResponse, error) {
	item, err := h.GetCampaign.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(item)}, nil
}

func (h Handler) UpdateCampaignHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	req httptransport.UpdateCampaignRequest,
) (httptransport.CampaignResponse, error) {
	campaign, err := h.UpdateCampaign.Execute(ctx, commands.UpdateCampaignCommand{
		CampaignID:     campaignID,
		ActorID:        userID,
		Name:           req.Name,
		Objective:      req.Objective,
		TargetAudience: req.TargetAudience,
		Budget:         req.Budget,
		Channels:       req.Channels,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(campaign)}, nil
}

func (h Handler) ChangeCampaignStatusHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	action commands.ChangeStatusAction,
) (httptransport.CampaignResponse, error) {
	campaign, err := h.ChangeStatus.Execute(ctx, commands.ChangeStatusCommand{
		CampaignID: campaignID,
		ActorID:    userID,
		Action:     action,
	})
	if err != nil {
		return httptransport.CampaignResponse{}, err
	}
	return httptransport.CampaignResponse{Campaign: mapCampaign(campaign)}, nil
}

func (h Handler) DeleteCampaignHandler(ctx context.Context, userID string, campaignID string) error {
	return h.DeleteCampaign.Execute(ctx, commands.DeleteCampaignCommand{
		CampaignID: campaignID,
		ActorID:    userID,
	})
}

func (h Handler) ListContentItemsHandler(
	ctx context.Context,
	campaignID string,
	query string,
	status string,
	platform string,
) (httptransport.ListContentItemsResponse, error) {
	items, err := h.ListContentItems.Execute(ctx, queries.ListContentItemsQuery{
		CampaignID: campaignID,
		Filter: entities.ContentFilter{
			Query:    query,
			Status:   status,
			Platform: platform,
		},
	})
	if err != nil {
		return httptransport.ListContentItemsResponse{}, err
	}
	result := make([]httptransport.ContentItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapContentItem(item))
	}
	return httptransport.ListContentItemsResponse{Items: result, Count: len(result)}, nil
}

func (h Handler) CreateContentItemHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	req httptransport.CreateContentItemRequest,
) (httptransport.ContentItemResponse, error) {
	item, err := h.AddContentItem.Execute(ctx, commands.AddContentItemCommand{
		CampaignID: campaignID,
		ActorID:    userID,
		Title:      req.Title,
		Type:       req.Type,
		Platform:   req.Platform,
		Status:     req.Status,
		AssignedTo: req.AssignedTo,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
	})
	if err != nil {
		return httptransport.ContentItemResponse{}, err
	}
	return httptransport.ContentItemResponse{Item: mapContentItem(item)}, nil
}

func (h Handler) UpdateContentItemHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	itemID string,
	req httptransport.UpdateContentItemRequest,
) (httptransport.ContentItemResponse, error) {
	item, err := h.EditContentItem.Execute(ctx, commands.EditContentItemCommand{
		CampaignID: campaignID,
		ItemID:     itemID,
		ActorID:    userID,
		Title:      req.Title,
		Type:       req.Type,
		Platform:   req.Platform,
		AssignedTo: req.AssignedTo,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
		Progress:   req.Progress,
	})
	if err != nil {
		return httptransport.ContentItemResponse{}, err
	}
	return httptransport.ContentItemResponse{Item: mapContentItem(item)}, nil
}

func (h Handler) DeleteContentItemHandler(ctx context.Context, userID string, campaignID string, itemID string) error {
	return h.DeleteContentItem.Execute(ctx, commands.DeleteContentItemCommand{
		CampaignID: campaignID,
		ItemID:     itemID,
		ActorID:    userID,
	})
}

func (h Handler) AdvanceContentItemHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	itemID string,
) (httptransport.TransitionResponse, error) {
	return h.transition(ctx, commands.TransitionContentItemCommand{
		CampaignID: campaignID,
		ItemID:     itemID,
		ActorID:    userID,
		Action:     entities.StatusActionAdvance,
	})
}

func (h Handler) ResetContentItemHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	itemID string,
) (httptransport.TransitionResponse, error) {
	return h.transition(ctx, commands.TransitionContentItemCommand{
		CampaignID: campaignID,
		ItemID:     itemID,
		ActorID:    userID,
		Action:     entities.StatusActionReset,
	})
}

func (h Handler) SetContentItemStatusHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	itemID string,
	req httptransport.SetContentStatusRequest,
) (httptransport.TransitionResponse, error) {
	return h.transition(ctx, commands.TransitionContentItemCommand{
		CampaignID: campaignID,
		ItemID:     itemID,
		ActorID:    userID,
		Action:     entities.StatusActionSet,
		Status:     req.Status,
	})
}

func (h Handler) ListStatusHistoryHandler(ctx context.Context, campaignID string) (httptransport.ListStatusHistoryResponse, error) {
	items, err := h.ListStatusHistory.Execute(ctx, campaignID)
	if err != nil {
		return httptransport.ListStatusHistoryResponse{}, err
	}
	result := make([]httptransport.StatusChangeDTO, 0, len(items))
	for _, item := range items {
		result = append(result, httptransport.StatusChangeDTO{
			ChangeID:     item.ChangeID,
			ItemID:       item.ItemID,
			Action:       string(item.Action),
			FromStatus:   string(item.FromStatus),
			ToStatus:     string(item.ToStatus),
			FromProgress: item.FromProgress,
			ToProgress:   item.ToProgress,
			ChangedBy:    item.ChangedBy,
			CreatedAt:    item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return httptransport.ListStatusHistoryResponse{Items: result}, nil
}

func (h Handler) transition(
	ctx context.Context,
	cmd commands.TransitionContentItemCommand,
) (httptransport.TransitionResponse, error) {
	result, err := h.TransitionContentItem.Execute(ctx, cmd)
	if err != nil {
		return httptransport.TransitionResponse{}, err
	}
	return httptransport.TransitionResponse{
		Item:    mapContentItem(result.Item),
		Changed: result.Changed,
	}, nil
}

func mapCampaign(item entities.Campaign) httptransport.CampaignDTO {
	channels := make([]string, 0, len(item.Channels))
	for _, channel := range item.Channels {
		channels = append(channels, string(channel))
	}
	breakdown := make(map[string]int, len(entities.ContentStatuses))
	for status, count := range item.StatusBreakdown() {
		breakdown[string(status)] = count
	}
	contentItems := make([]httptransport.ContentItemDTO, 0, len(item.ContentItems))
	for _, contentItem := range item.ContentItems {
		contentItems = append(contentItems, mapContentItem(contentItem))
	}
	return httptransport.CampaignDTO{
		CampaignID:      item.CampaignID,
		Name:            item.Name,
		Objective:       item.Objective,
		TargetAudience:  item.TargetAudience,
		Budget:          item.Budget,
		Channels:        channels,
		StartDate:       item.StartDate,
		EndDate:         item.EndDate,
		Status:          string(item.Status),
		Progress:        roundProgress(item.Progress()),
		StatusBreakdown: breakdown,
		ContentItems:    contentItems,
		CreatedAt:       formatTime(item.CreatedAt),
		UpdatedAt:       formatTime(item.UpdatedAt),
	}
}

func mapContentItem(item entities.ContentItem) httptransport.ContentItemDTO {
	result := httptransport.ContentItemDTO{
		ItemID:     item.ItemID,
		Title:      item.Title,
		Type:       string(item.Type),
		Platform:   string(item.Platform),
		Status:     string(item.Status),
		AssignedTo: item.AssignedTo,
		DueDate:    item.DueDate,
		Progress:   item.Progress,
		Notes:      item.Notes,
		CreatedAt:  formatTime(item.CreatedAt),
		UpdatedAt:  formatTime(item.UpdatedAt),
	}
	if next, ok := item.Status.Next(); ok {
		result.NextStatus = string(next)
	}
	return result
}

func roundProgress(value float64) float64 {
	return math.Round(value*10) / 10
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}
