package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateCampaignRequest struct {
	Name           string   `json:"name"`
	Objective      string   `json:"objective"`
	TargetAudience string   `json:"target_audience"`
	Budget         float64  `json:"budget"`
	Channels       []string `json:"channels"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Status         string   `json:"status"`
}

type UpdateCampaignRequest struct {
	Name           *string   `json:"name"`
	Objective      *string   `json:"objective"`
	TargetAudience *string   `json:"target_audience"`
	Budget         *float64  `json:"budget"`
	Channels       *[]string `json:"channels"`
	StartDate      *string   `json:"start_date"`
	EndDate        *string   `json:"end_date"`
}

type CreateContentItemRequest struct {
	Title      string `json:"title"`
	Type       string `json:"type"`
	Platform   string `json:"platform"`
	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to"`
	DueDate    string `json:"due_date"`
	Notes      string `json:"notes"`
}

type UpdateContentItemRequest struct {
	Title      *string `json:"title"`
	Type       *string `json:"type"`
	Platform   *string `json:"platform"`
	AssignedTo *string `json:"assigned_to"`
	DueDate    *string `json:"due_date"`
	Notes      *string `json:"notes"`
	Progress   *int    `json:"progress"`
}

type SetContentStatusRequest struct {
	Status string `json:"status"`
}

type ContentItemDTO struct {
	ItemID     string `json:"item_id"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Platform   string `json:"platform"`
	Status     string `json:"status"`
	NextStatus string `json:"next_status,omitempty"`
	AssignedTo string `json:"assigned_to"`
	DueDate    string `json:"due_date,omitempty"`
	Progress   int    `json:"progress"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

type CampaignDTO struct {
	CampaignID      string           `json:"campaign_id"`
	Name            string           `json:"name"`
	Objective       string           `json:"objective,omitempty"`
	TargetAudience  string           `json:"target_audience,omitempty"`
	Budget          float64          `json:"budget"`
	Channels        []string         `json:"channels"`
	StartDate       string           `json:"start_date,omitempty"`
	EndDate         string           `json:"end_date,omitempty"`
	Status          string           `json:"status"`
	Progress        float64          `json:"progress"`
	StatusBreakdown map[string]int   `json:"status_breakdown"`
	ContentItems    []ContentItemDTO `json:"content_items"`
	CreatedAt       string           `json:"created_at,omitempty"`
	UpdatedAt       string           `json:"updated_at,omitempty"`
}

type CampaignSummaryDTO struct {
	CampaignID string  `json:"campaign_id"`
	Name       string  `json:"name"`
	StartDate  string  `json:"start_date,omitempty"`
	EndDate    string  `json:"end_date,omitempty"`
	Status     string  `json:"status"`
	Progress   float64 `json:"progress"`
	ItemCount  int     `json:"item_count"`
}

type CampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type ListCampaignsResponse struct {
	Items []CampaignSummaryDTO `json:"items"`
}

type ContentItemResponse struct {
	Item ContentItemDTO `json:"item"`
}

type TransitionResponse struct {
	Item    ContentItemDTO `json:"item"`
	Changed bool           `json:"changed"`
}

type ListContentItemsResponse struct {
	Items []ContentItemDTO `json:"items"`
	Count int              `json:"count"`
}

type StatusChangeDTO struct {
	ChangeID     string `json:"change_id"`
	ItemID       string `json:"item_id"`
	Action       string `json:"action"`
	FromStatus   string `json:"from_status,omitempty"`
	ToStatus     string `json:"to_status"`
	FromProgress int    `json:"from_progress"`
	ToProgress   int    `json:"to_progress"`
	ChangedBy    string `json:"changed_by"`
	CreatedAt    string `json:"created_at"`
}

type ListStatusHistoryResponse struct {
	Items []StatusChangeDTO `json:"items"`
}
