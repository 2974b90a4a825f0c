package checkout

import (
	"context"
	"net/url"

	"namas_storefront/internal/payment"
)

// Issue de la page de complétion
type Result string

const (
	ResultSuccess Result = "success"
	ResultPending Result = "pending"
	ResultRetry   Result = "retry"
	ResultFailure Result = "failure"
	// ResultNone : pas de client secret dans l'URL de retour
	ResultNone Result = "none"
)

type Completion struct {
	Result  Result `json:"result"`
	Message string `json:"message"`
}

// QueryParamClientSecret : paramètre posé par le processeur sur l'URL de retour
const QueryParamClientSecret = "payment_intent_client_secret"

// CompletePayment traite la page de complétion, atteinte en ligne ou par
// redirection. Sans client secret dans l'URL, le collaborateur n'est
// jamais appelé. Sinon un seul sondage d'état, jamais répété.
func CompletePayment(ctx context.Context, collaborator payment.Collaborator, query url.Values) Completion {
	clientSecret := query.Get(QueryParamClientSecret)
	if clientSecret == "" {
		return Completion{Result: ResultNone, Message: "No Payment Intent found."}
	}

	status, err := collaborator.Retrieve(ctx, clientSecret)
	if err != nil {
		return Completion{Result: ResultFailure, Message: err.Error()}
	}

	switch status {
	case payment.StatusSucceeded:
		return Completion{Result: ResultSuccess, Message: "Purchase successful!"}
	case payment.StatusProcessing:
		return Completion{Result: ResultPending, Message: "Your purchase is processing."}
	case payment.StatusRequiresPaymentMethod:
		return Completion{Result: ResultRetry, Message: "Your payment was not successful, please try again."}
	default:
		return Completion{Result: ResultFailure, Message: "An unexpected error occurred."}
	}
}
