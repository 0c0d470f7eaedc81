package registry

import (
	"testing"

	"atelier/internal/storage"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRegistry() (*ClientRegistry, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewClientRegistry(store, zap.NewNop()), store
}

func TestCreateOrUpdate_NewClient(t *testing.T) {
	reg, _ := newTestRegistry()

	client, err := reg.CreateOrUpdate(ClientInput{
		Name:  "Aminata Diallo",
		Email: "aminata@example.com",
		Phone: "+221 77 123 45 67",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.Equal(t, "Aminata Diallo", client.Name)
	assert.Equal(t, "aminata@example.com", client.Email)
	assert.Equal(t, 0, client.TotalOrders)
	assert.Equal(t, 0.0, client.TotalValue)
	assert.False(t, client.RegisteredAt.IsZero())
}

func TestCreateOrUpdate_SameEmailNeverDuplicates(t *testing.T) {
	reg, _ := newTestRegistry()

	first, err := reg.CreateOrUpdate(ClientInput{Name: "Aminata", Email: "aminata@example.com"})
	assert.NoError(t, err)

	second, err := reg.CreateOrUpdate(ClientInput{Email: "aminata@example.com", Phone: "+221 77 000 00 00"})
	assert.NoError(t, err)

	// Id is stable and non-conflicting fields are merged.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Aminata", second.Name)
	assert.Equal(t, "+221 77 000 00 00", second.Phone)

	clients, err := reg.Clients()
	assert.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestCreateOrUpdate_EmailMatchIsCaseInsensitive(t *testing.T) {
	reg, _ := newTestRegistry()

	first, err := reg.CreateOrUpdate(ClientInput{Name: "Moussa", Email: "Moussa@Example.COM"})
	assert.NoError(t, err)
	assert.Equal(t, "moussa@example.com", first.Email)

	second, err := reg.CreateOrUpdate(ClientInput{Email: "moussa@example.com", Company: "Dakar Web"})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Dakar Web", second.Company)
}

func TestCreateOrUpdate_MissingEmailMatchesNothing(t *testing.T) {
	reg, _ := newTestRegistry()

	a, err := reg.CreateOrUpdate(ClientInput{Name: "Anonyme"})
	assert.NoError(t, err)

	b, err := reg.CreateOrUpdate(ClientInput{Name: "Anonyme"})
	assert.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestFindByEmail(t *testing.T) {
	reg, _ := newTestRegistry()

	created, err := reg.CreateOrUpdate(ClientInput{Name: "Fatou", Email: "fatou@example.com"})
	assert.NoError(t, err)

	found, err := reg.FindByEmail("FATOU@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := reg.FindByEmail("nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRecordOrder_BumpsTotals(t *testing.T) {
	reg, _ := newTestRegistry()

	client, err := reg.CreateOrUpdate(ClientInput{Name: "Fatou", Email: "fatou@example.com"})
	assert.NoError(t, err)

	assert.NoError(t, reg.RecordOrder(client.ID, 0))
	assert.NoError(t, reg.RecordOrder(client.ID, 250000))

	updated, err := reg.FindByEmail("fatou@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 2, updated.TotalOrders)
	assert.Equal(t, 250000.0, updated.TotalValue)
}
