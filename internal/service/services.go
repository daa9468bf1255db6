// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/PsyChonek/spajzka-client/internal/adapter"
	"github.com/PsyChonek/spajzka-client/internal/logger"
	"github.com/PsyChonek/spajzka-client/internal/store"
	"github.com/PsyChonek/spajzka-client/models"
)

// ClientServices bundles every service of the client. Constructed once per
// session and passed by reference; there is no global state.
type ClientServices struct {
	Auth   *AuthService
	Groups *GroupService

	Items    *SyncStore[models.Item, *models.Item]
	Pantry   *SyncStore[models.PantryEntry, *models.PantryEntry]
	Shopping *SyncStore[models.ShoppingEntry, *models.ShoppingEntry]
	Recipes  *SyncStore[models.Recipe, *models.Recipe]
}

// NewClientServices wires the five resource stores plus auth on top of the
// shared transport, snapshot storage, connectivity oracle and events bus.
func NewClientServices(
	client *adapter.Client,
	storages *store.ClientStorages,
	oracle ConnectivityOracle,
	bus GroupEventPublisher,
	log *logger.Logger,
) *ClientServices {
	notifier := NewLogNotifier(log)
	snapshots := storages.Snapshots

	groupStore := NewSyncStore[models.Group](
		"groups", snapshots,
		adapter.NewResource[models.Group](client, adapter.GroupsPath),
		oracle, noGroup{}, notifier, log,
	)
	groups := NewGroupService(groupStore, bus, log)

	return &ClientServices{
		Auth:   NewAuthService(client, log),
		Groups: groups,
		Items: NewSyncStore[models.Item](
			"items", snapshots,
			adapter.NewResource[models.Item](client, adapter.ItemsPath),
			oracle, groups, notifier, log,
		),
		Pantry: NewSyncStore[models.PantryEntry](
			"pantry", snapshots,
			adapter.NewResource[models.PantryEntry](client, adapter.PantryPath),
			oracle, groups, notifier, log,
		),
		Shopping: NewSyncStore[models.ShoppingEntry](
			"shopping", snapshots,
			adapter.NewResource[models.ShoppingEntry](client, adapter.ShoppingPath),
			oracle, groups, notifier, log,
		),
		Recipes: NewSyncStore[models.Recipe](
			"recipes", snapshots,
			adapter.NewResource[models.Recipe](client, adapter.RecipesPath),
			oracle, groups, notifier, log,
		),
	}
}

// noGroup is the provider for the groups store itself: the group collection
// endpoint is not scoped to a group.
type noGroup struct{}

func (noGroup) ActiveGroupID() string { return "" }
