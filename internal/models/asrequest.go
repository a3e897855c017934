package models

import (
	"encoding/json"
	"strings"
	"time"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string and normalizes to a trimmed slice.
// Legacy AS request rows stored assigned_to as "김민수, 박지은".
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = trimAll(arr)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if strings.TrimSpace(single) == "" {
		*s = StringList{}
		return nil
	}
	*s = trimAll(strings.Split(single, ","))
	return nil
}

func trimAll(in []string) StringList {
	out := make(StringList, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ASRequest represents an after-service (A/S) visit request
type ASRequest struct {
	ID                 int64      `json:"id"`
	Project            string     `json:"project"`
	AssignedTo         StringList `json:"assigned_to"`
	ScheduledVisitDate *time.Time `json:"scheduled_visit_date,omitempty"`
	ScheduledVisitTime *string    `json:"scheduled_visit_time,omitempty"`
	Description        *string    `json:"description,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// UpdateASRequestRequest is a partial patch; ClearVisitDate removes the
// calendar entry without deleting the AS request itself.
type UpdateASRequestRequest struct {
	AssignedTo         *StringList `json:"assigned_to,omitempty"`
	ScheduledVisitDate *string     `json:"scheduled_visit_date,omitempty"`
	ScheduledVisitTime *string     `json:"scheduled_visit_time,omitempty"`
	Description        *string     `json:"description,omitempty"`
	Status             *string     `json:"status,omitempty"`
	ClearVisitDate     bool        `json:"clear_visit_date,omitempty"`
}
