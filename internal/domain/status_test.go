package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressFor_FixedTable(t *testing.T) {
	expected := map[OrderStatus]int{
		StatusQuoteRequested:    5,
		StatusQuoteReviewing:    15,
		StatusQuoteSent:         25,
		StatusQuoteAccepted:     35,
		StatusQuoteRejected:     0,
		StatusProjectStarted:    45,
		StatusProjectInProgress: 70,
		StatusProjectReview:     85,
		StatusProjectCompleted:  95,
		StatusProjectDelivered:  100,
		StatusArchived:          100,
	}

	for status, progress := range expected {
		assert.Equal(t, progress, ProgressFor(status), "progress for %s", status)
	}
}

func TestProgressFor_UnknownStatus(t *testing.T) {
	assert.Equal(t, 0, ProgressFor(OrderStatus("bogus")))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusProjectReview))
	assert.False(t, IsValidStatus(OrderStatus("pending")))
}

func TestStatusAnnouncement_Copy(t *testing.T) {
	assert.Equal(t, "Votre demande de devis a été reçue", StatusAnnouncement(StatusQuoteRequested))
	assert.Equal(t, "Votre devis est prêt! Consultez votre espace client", StatusAnnouncement(StatusQuoteSent))
	assert.Equal(t, "Votre projet a été livré avec succès", StatusAnnouncement(StatusProjectDelivered))
	assert.Equal(t, "Votre projet a été archivé", StatusAnnouncement(StatusArchived))
}

func TestStatusAnnouncement_UnknownStatus(t *testing.T) {
	assert.Equal(t, "Statut du projet mis à jour", StatusAnnouncement(OrderStatus("bogus")))
}

func TestUrgentStatus(t *testing.T) {
	urgent := []OrderStatus{StatusQuoteSent, StatusProjectCompleted, StatusProjectDelivered}
	for _, s := range urgent {
		assert.True(t, UrgentStatus(s), "%s should be urgent", s)
	}

	notUrgent := []OrderStatus{StatusQuoteRequested, StatusQuoteReviewing, StatusQuoteAccepted,
		StatusQuoteRejected, StatusProjectStarted, StatusProjectInProgress, StatusProjectReview, StatusArchived}
	for _, s := range notUrgent {
		assert.False(t, UrgentStatus(s), "%s should not be urgent", s)
	}
}

func TestCanTransition_LifecycleGraph(t *testing.T) {
	assert.True(t, CanTransition(StatusQuoteRequested, StatusQuoteReviewing))
	assert.True(t, CanTransition(StatusQuoteSent, StatusQuoteAccepted))
	assert.True(t, CanTransition(StatusQuoteSent, StatusQuoteRejected))
	assert.True(t, CanTransition(StatusProjectCompleted, StatusProjectDelivered))

	assert.False(t, CanTransition(StatusQuoteRequested, StatusProjectDelivered))
	assert.False(t, CanTransition(StatusQuoteRejected, StatusQuoteRequested))
}

func TestCanTransition_ArchiveFromNonTerminal(t *testing.T) {
	assert.True(t, CanTransition(StatusQuoteRequested, StatusArchived))
	assert.True(t, CanTransition(StatusProjectInProgress, StatusArchived))

	// Terminal states stay terminal.
	assert.False(t, CanTransition(StatusQuoteRejected, StatusArchived))
	assert.False(t, CanTransition(StatusProjectDelivered, StatusArchived))
	assert.False(t, CanTransition(StatusArchived, StatusArchived))
}

func TestMapLegacyStatus(t *testing.T) {
	cases := map[string]OrderStatus{
		"new":       StatusQuoteRequested,
		"reviewing": StatusQuoteReviewing,
		"quoted":    StatusQuoteSent,
		"accepted":  StatusQuoteAccepted,
		"rejected":  StatusQuoteRejected,
		"archived":  StatusArchived,
		"whatever":  StatusQuoteRequested,
		"":          StatusQuoteRequested,
	}

	for legacy, want := range cases {
		assert.Equal(t, want, MapLegacyStatus(legacy), "legacy status %q", legacy)
	}
}

func TestNewID_PrefixAndUniqueness(t *testing.T) {
	a := NewID("order")
	b := NewID("order")

	assert.Contains(t, a, "order-")
	assert.NotEqual(t, a, b)
}
