package response

import "github.com/harismriti/sadhna-api/internal/domain"

type EntryResponse struct {
	Message string            `json:"message"`
	Entry   domain.DailyEntry `json:"entry"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HistoryResponse struct {
	Devotee domain.UserSummary  `json:"devotee"`
	Entries []domain.DailyEntry `json:"entries"`
}
