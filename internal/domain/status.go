package domain

// progressTable maps each status to its fixed progress value. These values
// are relied on by client dashboards; do not change them.
var progressTable = map[OrderStatus]int{
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

// ProgressFor returns the progress percentage for a status. Progress is
// always derived from status, never stored independently.
func ProgressFor(status OrderStatus) int {
	return progressTable[status]
}

// IsValidStatus reports whether s is one of the eleven known statuses.
func IsValidStatus(s OrderStatus) bool {
	_, ok := progressTable[s]
	return ok
}

// statusAnnouncements is the client-facing copy shown on each status change.
// The wording is displayed verbatim in client dashboards.
var statusAnnouncements = map[OrderStatus]string{
	StatusQuoteRequested:    "Votre demande de devis a été reçue",
	StatusQuoteReviewing:    "Votre demande est en cours d'examen",
	StatusQuoteSent:         "Votre devis est prêt! Consultez votre espace client",
	StatusQuoteAccepted:     "Votre devis a été accepté, le projet va commencer",
	StatusQuoteRejected:     "Votre devis a été refusé",
	StatusProjectStarted:    "Votre projet a officiellement commencé!",
	StatusProjectInProgress: "Votre projet avance bien",
	StatusProjectReview:     "Votre projet est en phase de révision",
	StatusProjectCompleted:  "Votre projet est terminé!",
	StatusProjectDelivered:  "Votre projet a été livré avec succès",
	StatusArchived:          "Votre projet a été archivé",
}

// StatusAnnouncement returns the client-facing message for a status change.
func StatusAnnouncement(status OrderStatus) string {
	if msg, ok := statusAnnouncements[status]; ok {
		return msg
	}
	return "Statut du projet mis à jour"
}

// UrgentStatus reports whether a transition into status should flag its
// notification as urgent.
func UrgentStatus(status OrderStatus) bool {
	switch status {
	case StatusQuoteSent, StatusProjectCompleted, StatusProjectDelivered:
		return true
	}
	return false
}

// IsTerminalStatus reports whether the state machine defines no forward
// transition out of status.
func IsTerminalStatus(status OrderStatus) bool {
	switch status {
	case StatusQuoteRejected, StatusProjectDelivered, StatusArchived:
		return true
	}
	return false
}

// forwardTransitions is the expected lifecycle graph. Any non-terminal
// status may additionally transition to archived.
var forwardTransitions = map[OrderStatus][]OrderStatus{
	StatusQuoteRequested:    {StatusQuoteReviewing},
	StatusQuoteReviewing:    {StatusQuoteSent},
	StatusQuoteSent:         {StatusQuoteAccepted, StatusQuoteRejected},
	StatusQuoteAccepted:     {StatusProjectStarted},
	StatusProjectStarted:    {StatusProjectInProgress},
	StatusProjectInProgress: {StatusProjectReview},
	StatusProjectReview:     {StatusProjectCompleted},
	StatusProjectCompleted:  {StatusProjectDelivered},
}

// CanTransition reports whether from→to follows the lifecycle graph. The
// store logs off-graph transitions but does not block them: admins may move
// an order anywhere.
func CanTransition(from, to OrderStatus) bool {
	if to == StatusArchived {
		return !IsTerminalStatus(from)
	}
	for _, next := range forwardTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
