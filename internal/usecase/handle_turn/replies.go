package handle_turn

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const (
	replySubmitFailed = "Sorry, the request could not be submitted. Please try again later."
	replyAnswerFailed = "Sorry, I could not answer your question right now. Please try again later."
)

func replyNotFound(id int64) string {
	return fmt.Sprintf("There is no reservation request with ID %d.", id)
}

func replyLookupFailed(id int64) string {
	return fmt.Sprintf("Sorry, I could not check request %d right now. Please try again later.", id)
}

func replySubmitted(id int64) string {
	return fmt.Sprintf("Your reservation request has been sent to the administrator. "+
		"Your request ID is %d. You can ask later: 'What is the status of my reservation %d?'", id, id)
}

func replyStatus(req *domain.ReservationRequest) string {
	switch req.Status {
	case domain.StatusPending:
		return fmt.Sprintf("Request %d is still pending administrator approval.", req.ID)
	case domain.StatusApproved:
		return fmt.Sprintf("Request %d has been approved. Period: %s to %s.", req.ID, req.PeriodStart, req.PeriodEnd)
	default:
		reply := fmt.Sprintf("Request %d was refused.", req.ID)
		if req.AdminComment != "" {
			reply += " Comment: " + req.AdminComment
		}
		return reply
	}
}
