package contentprogress

import (
	"context"
	"log/slog"

	httpadapter "campaignhub/contexts/campaign-editorial/content-progress-service/adapters/http"
	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/memory"
	"campaignhub/contexts/campaign-editorial/content-progress-service/adapters/snapshot"
	"campaignhub/contexts/campaign-editorial/content-progress-service/application/commands"
	"campaignhub/contexts/campaign-editorial/content-progress-service/application/queries"
	"campaignhub/contexts/campaign-editorial/content-progress-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Campaigns   ports.CampaignRepository
	History     ports.HistoryRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createCampaign := commands.CreateCampaignUseCase{
		Campaigns:   deps.Campaigns,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	updateCampaign := commands.UpdateCampaignUseCase{
		Campaigns: deps.Campaigns,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	changeStatus := commands.ChangeStatusUseCase{
		Campaigns: deps.Campaigns,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	deleteCampaign := commands.DeleteCampaignUseCase{
		Campaigns: deps.Campaigns,
		History:   deps.History,
		Logger:    deps.Logger,
	}
	addContentItem := commands.AddContentItemUseCase{
		Campaigns:   deps.Campaigns,
		History:     deps.History,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	transitionContentItem := commands.TransitionContentItemUseCase{
		Campaigns: deps.Campaigns,
		History:   deps.History,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	editContentItem := commands.EditContentItemUseCase{
		Campaigns: deps.Campaigns,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	deleteContentItem := commands.DeleteContentItemUseCase{
		Campaigns:   deps.Campaigns,
		History:     deps.History,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}

	listCampaigns := queries.ListCampaignsUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}
	getCampaign := queries.GetCampaignUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}
	listContentItems := queries.ListContentItemsUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}
	listStatusHistory := queries.ListStatusHistoryUseCase{
		Campaigns: deps.Campaigns,
		History:   deps.History,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateCampaign:        createCampaign,
			UpdateCampaign:        updateCampaign,
			ChangeStatus:          changeStatus,
			DeleteCampaign:        deleteCampaign,
			AddContentItem:        addContentItem,
			TransitionContentItem: transitionContentItem,
			EditContentItem:       editContentItem,
			DeleteContentItem:     deleteContentItem,
			ListCampaigns:         listCampaigns,
			GetCampaign:           getCampaign,
			ListContentItems:      listContentItems,
			ListStatusHistory:     listStatusHistory,
			Logger:                deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against a process-local store. The
// snapshot is still encoded to JSON on every mutation so persistence
// behaviour matches the durable backends.
func NewInMemoryModule(logger *slog.Logger) (Module, error) {
	store := memory.NewStore()
	repo, err := snapshot.Open(context.Background(), snapshot.NewStore(store, logger), logger)
	if err != nil {
		return Module{}, err
	}
	module := NewModule(Dependencies{
		Campaigns:   repo,
		History:     store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module, nil
}
