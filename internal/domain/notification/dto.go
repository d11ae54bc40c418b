package notification

import "time"

type NotificationResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	Read       bool    `json:"read"`
	ReadAt     *string `json:"read_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func ToResponse(n Notification) NotificationResponse {
	var readAt *string
	if n.ReadAt != nil {
		str := n.ReadAt.Format(time.RFC3339)
		readAt = &str
	}

	return NotificationResponse{
		ID:         n.ID,
		EmployeeID: n.EmployeeID,
		Type:       string(n.Type),
		Title:      n.Title,
		Message:    n.Message,
		Read:       n.Read,
		ReadAt:     readAt,
		CreatedAt:  n.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(records []Notification) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}
