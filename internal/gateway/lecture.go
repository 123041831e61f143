package gateway

import (
	"context"

	"lmsadmin/internal/dto"
	"lmsadmin/internal/model"
)

// The lecture endpoints wrap their records in small envelopes.
type lectureCreated struct {
	NewLecture model.Lecture `json:"newLecture"`
}

type lectureUpdated struct {
	Lecture model.Lecture `json:"lecture"`
}

// ListLectures fetches the ordered lectures of one course.
func (c *Client) ListLectures(ctx context.Context, courseID string) ([]model.Lecture, error) {
	var out []model.Lecture
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetPathParam("courseId", courseID).
		Get("/course/lecture-get-all/{courseId}")
	if err != nil {
		return nil, c.transportError("list lectures", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return out, nil
}

// CreateLecture creates a lecture under the given course.
func (c *Client) CreateLecture(ctx context.Context, courseID string, in dto.LectureInput) (*model.Lecture, error) {
	var out lectureCreated
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&out).
		SetPathParam("courseId", courseID).
		Post("/course/lecture-create/{courseId}")
	if err != nil {
		return nil, c.transportError("create lecture", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &out.NewLecture, nil
}

// UpdateLecture edits a lecture in place, preserving its id.
func (c *Client) UpdateLecture(ctx context.Context, id string, in dto.LectureInput) (*model.Lecture, error) {
	var out lectureUpdated
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&out).
		SetPathParam("id", id).
		Patch("/course/lecture-edit/{id}")
	if err != nil {
		return nil, c.transportError("update lecture", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &out.Lecture, nil
}

// DeleteLecture deletes a lecture by id.
func (c *Client) DeleteLecture(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/course/lecture-delete/{id}")
	if err != nil {
		return c.transportError("delete lecture", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}
