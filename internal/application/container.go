package application

import (
	"context"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/propertypro/ppai/internal/ports"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Dependencies struct {
	API      ports.APIClient
	Session  *SessionStore
	Clock    ports.Clock
	Log      logrus.FieldLogger
	Provider domain.AIProvider
}

// Container holds one instance of every store and service.
type Container struct {
	Session       *SessionStore
	Auth          *AuthService
	Properties    *PropertyStore
	Clients       *ClientStore
	Transactions  *TransactionStore
	UI            *UIStore
	Coordinator   *Coordinator
	CommandCenter *CommandCenter
	Marketing     *MarketingService
	Social        *SocialService
	Workflows     *WorkflowService
}

func NewContainer(deps Dependencies) *Container {
	log := deps.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	ui := NewUIStore(clock, log.WithField("store", "ui"))
	coordinator := NewCoordinator(deps.API, deps.Provider, clock, log.WithField("service", "coordinator"))

	return &Container{
		Session:       deps.Session,
		Auth:          NewAuthService(deps.API, deps.Session, clock, log.WithField("service", "auth")),
		Properties:    NewPropertyStore(deps.API, clock, log.WithField("store", "properties")),
		Clients:       NewClientStore(deps.API, clock, log.WithField("store", "clients")),
		Transactions:  NewTransactionStore(deps.API, clock, log.WithField("store", "transactions")),
		UI:            ui,
		Coordinator:   coordinator,
		CommandCenter: NewCommandCenter(ui, coordinator),
		Marketing:     NewMarketingService(deps.API),
		Social:        NewSocialService(deps.API),
		Workflows:     NewWorkflowService(deps.API),
	}
}

// RefreshAll fetches properties, clients and transactions concurrently. Every store records its own
// outcome; the first error is returned.
func (c *Container) RefreshAll(ctx context.Context) error {
	var group errgroup.Group
	group.Go(func() error { return c.Properties.Fetch(ctx) })
	group.Go(func() error { return c.Clients.Fetch(ctx) })
	group.Go(func() error { return c.Transactions.Fetch(ctx) })
	return group.Wait()
}
