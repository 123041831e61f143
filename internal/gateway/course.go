package gateway

import (
	"context"
	"strconv"

	"github.com/go-resty/resty/v2"

	"lmsadmin/internal/dto"
	"lmsadmin/internal/model"
)

// ListCourses fetches the full ordered course collection.
func (c *Client) ListCourses(ctx context.Context) ([]model.Course, error) {
	var out []model.Course
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/course")
	if err != nil {
		return nil, c.transportError("list courses", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	for i := range out {
		out[i].Normalize()
	}
	return out, nil
}

// GetCourse fetches a single course by id.
func (c *Client) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	var out model.Course
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetPathParam("id", id).
		Get("/course/get-course-by-id/{id}")
	if err != nil {
		return nil, c.transportError("get course", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	out.Normalize()
	return &out, nil
}

// CreateCourse creates a course. The payload goes out as JSON unless a
// thumbnail file is attached, in which case it is sent multipart.
func (c *Client) CreateCourse(ctx context.Context, in dto.CourseInput) (*model.Course, error) {
	var out model.Course
	req := c.courseRequest(ctx, in).SetResult(&out)
	resp, err := req.Post("/course/create")
	if err != nil {
		return nil, c.transportError("create course", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	out.Normalize()
	return &out, nil
}

// UpdateCourse edits a course in place, preserving its id.
func (c *Client) UpdateCourse(ctx context.Context, id string, in dto.CourseInput) (*model.Course, error) {
	var out model.Course
	req := c.courseRequest(ctx, in).SetResult(&out).SetPathParam("id", id)
	resp, err := req.Patch("/course/edit/{id}")
	if err != nil {
		return nil, c.transportError("update course", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	out.Normalize()
	return &out, nil
}

// DeleteCourse deletes a course by id.
func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/course/delete-course/{id}")
	if err != nil {
		return c.transportError("delete course", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}

// courseRequest encodes a course payload. With a file attached every field
// rides as a multipart part and the file wins over any URL reference; without
// one the payload is plain JSON and the stored URL passes through untouched.
func (c *Client) courseRequest(ctx context.Context, in dto.CourseInput) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if in.File == nil {
		return req.SetBody(in)
	}
	fields := map[string]string{
		"title":       in.Title,
		"subTitle":    in.SubTitle,
		"description": in.Description,
		"category":    in.Category,
		"level":       in.Level,
		"isPublished": strconv.FormatBool(in.IsPublished),
	}
	if in.Price != nil {
		fields["price"] = strconv.FormatFloat(*in.Price, 'f', -1, 64)
	}
	return req.
		SetMultipartFormData(fields).
		SetMultipartField("thumbnail", in.File.Name, in.File.ContentType, in.File.Open())
}
