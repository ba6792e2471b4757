package converter

import (
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
)

func FeedbackToResponse(feedback *entity.Feedback) *dto.FeedbackResponse {
	if feedback == nil {
		return nil
	}

	response := &dto.FeedbackResponse{
		ID:           feedback.ID,
		UserID:       feedback.UserID,
		Subject:      feedback.Subject,
		Message:      feedback.Message,
		Replied:      feedback.Replied,
		ReplyMessage: feedback.ReplyMessage,
		Ratings:      feedback.Ratings,
		CreatedAt:    feedback.CreatedAt,
	}
	if feedback.User != nil {
		name := feedback.User.DisplayName()
		response.Name = &name
		response.Email = feedback.User.Email
	}
	return response
}

func FeedbacksToResponses(feedbacks []entity.Feedback) []dto.FeedbackResponse {
	responses := make([]dto.FeedbackResponse, len(feedbacks))
	for i := range feedbacks {
		responses[i] = *FeedbackToResponse(&feedbacks[i])
	}
	return responses
}
