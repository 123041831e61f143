package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"lmsadmin/internal/dto"
	"lmsadmin/internal/model"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, staticToken(token), zerolog.Nop())
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}
}

func TestListCoursesNormalizesStatus(t *testing.T) {
	c := newTestClient(t, "tok-1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/course" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("expected bearer token, got %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected a request id header")
		}
		writeJSON(t, w, http.StatusOK, []map[string]interface{}{
			{"_id": "c1", "title": "Docker", "isPublished": true},
			{"_id": "c2", "title": "Next.js", "status": "Draft"},
		})
	})

	courses, err := c.ListCourses(context.Background())
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	if courses[0].Status != model.StatusPublished {
		t.Errorf("expected derived Published status, got %q", courses[0].Status)
	}
	if courses[1].IsPublished {
		t.Error("a Draft status must backfill isPublished=false")
	}
}

func TestListCoursesServerError(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]string{"message": "boom"})
	})

	_, err := c.ListCourses(context.Background())
	if !errors.Is(err, ErrServer) {
		t.Fatalf("expected ErrServer, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "boom" {
		t.Fatalf("expected the remote message to surface, got %v", err)
	}
}

func TestListCoursesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // unreachable on purpose
	c := New(srv.URL, time.Second, nil, zerolog.Nop())

	_, err := c.ListCourses(context.Background())
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatal("a transport failure must not look like a semantic rejection")
	}
}

func TestCreateCourseJSON(t *testing.T) {
	price := 0.0
	in := dto.CourseInput{
		Title:       "Intro to X",
		Description: "...",
		Category:    "Dev",
		Level:       "beginner",
		Thumbnail:   "https://x/y.png",
		Price:       &price,
	}

	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/course/create" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("expected a JSON body without a file, got %q", ct)
		}
		var got dto.CourseInput
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if diff := cmp.Diff(in, got); diff != "" {
			t.Errorf("payload mismatch (-want +got):\n%s", diff)
		}
		writeJSON(t, w, http.StatusCreated, map[string]interface{}{
			"_id": "c1", "title": got.Title, "isPublished": false,
		})
	})

	created, err := c.CreateCourse(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if created.ID != "c1" {
		t.Errorf("expected server-assigned id c1, got %q", created.ID)
	}
	if created.Status != model.StatusDraft {
		t.Errorf("unpublished course must come back as Draft, got %q", created.Status)
	}
}

func TestCreateCourseMultipartWithFile(t *testing.T) {
	in := dto.CourseInput{
		Title:       "Intro to X",
		Description: "...",
		Category:    "Dev",
		Level:       "beginner",
		Thumbnail:   "https://old/thumb.png",
		File:        &dto.FileRef{Name: "new.png", ContentType: "image/png", Content: []byte("png-bytes")},
	}

	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected a multipart body with a file, got: %v", err)
		}
		if got := r.FormValue("title"); got != "Intro to X" {
			t.Errorf("title field: got %q", got)
		}
		if _, ok := r.MultipartForm.Value["price"]; ok {
			t.Error("absent price must not produce a form field")
		}
		file, header, err := r.FormFile("thumbnail")
		if err != nil {
			t.Fatalf("thumbnail file part missing: %v", err)
		}
		defer file.Close()
		if header.Filename != "new.png" {
			t.Errorf("file name: got %q", header.Filename)
		}
		writeJSON(t, w, http.StatusCreated, map[string]interface{}{"_id": "c9", "title": "Intro to X"})
	})

	created, err := c.CreateCourse(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if created.ID != "c9" {
		t.Errorf("expected id c9, got %q", created.ID)
	}
}

func TestUpdateCourseKeepsStoredThumbnail(t *testing.T) {
	in := dto.CourseInput{
		Title:       "Intro to X",
		Description: "...",
		Category:    "Dev",
		Level:       "intermediate",
		Thumbnail:   "https://old/thumb.png",
	}

	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/course/edit/c1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var got dto.CourseInput
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if got.Thumbnail != "https://old/thumb.png" {
			t.Errorf("stored thumbnail must pass through unchanged, got %q", got.Thumbnail)
		}
		writeJSON(t, w, http.StatusOK, map[string]interface{}{"_id": "c1", "title": got.Title})
	})

	if _, err := c.UpdateCourse(context.Background(), "c1", in); err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
}

func TestDeleteCourseNotFound(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/course/delete-course/missing" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusNotFound, map[string]string{"message": "course not found"})
	})

	err := c.DeleteCourse(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLectureEnvelopes(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/course/lecture-create/c1":
			writeJSON(t, w, http.StatusCreated, map[string]interface{}{
				"newLecture": map[string]interface{}{"_id": "l1", "lectureTitle": "Welcome"},
			})
		case r.Method == http.MethodPatch && r.URL.Path == "/course/lecture-edit/l1":
			writeJSON(t, w, http.StatusOK, map[string]interface{}{
				"lecture": map[string]interface{}{"_id": "l1", "lectureTitle": "Welcome back"},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/course/lecture-get-all/c1":
			writeJSON(t, w, http.StatusOK, []map[string]interface{}{
				{"_id": "l1", "lectureTitle": "Welcome"},
			})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	})

	ctx := context.Background()
	created, err := c.CreateLecture(ctx, "c1", dto.LectureInput{LectureTitle: "Welcome"})
	if err != nil {
		t.Fatalf("CreateLecture: %v", err)
	}
	if created.ID != "l1" {
		t.Errorf("expected unwrapped newLecture, got %+v", created)
	}

	updated, err := c.UpdateLecture(ctx, "l1", dto.LectureInput{LectureTitle: "Welcome back"})
	if err != nil {
		t.Fatalf("UpdateLecture: %v", err)
	}
	if updated.LectureTitle != "Welcome back" {
		t.Errorf("expected unwrapped lecture, got %+v", updated)
	}

	lectures, err := c.ListLectures(ctx, "c1")
	if err != nil {
		t.Fatalf("ListLectures: %v", err)
	}
	if len(lectures) != 1 || lectures[0].ID != "l1" {
		t.Errorf("unexpected lectures: %+v", lectures)
	}
}

func TestLoginParsesSession(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/user/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var creds dto.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decoding credentials: %v", err)
		}
		writeJSON(t, w, http.StatusOK, map[string]interface{}{
			"user": map[string]interface{}{
				"_id": "u1", "name": "Ada", "email": creds.Email,
				"role": "instructor", "token": "jwt-abc",
			},
		})
	})

	sess, err := c.Login(context.Background(), dto.Credentials{Email: "ada@b.co", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	want := &model.UserSession{
		User:  model.UserProfile{ID: "u1", Name: "Ada", Email: "ada@b.co", Role: "instructor"},
		Token: "jwt-abc",
	}
	if diff := cmp.Diff(want, sess); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "invalid email or password"})
	})

	_, err := c.Login(context.Background(), dto.Credentials{Email: "ada@b.co", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Fatal("bad login must not read as a missing token")
	}
}

func TestUpdateProfileMultipartWithPhoto(t *testing.T) {
	in := dto.ProfileInput{
		Name:  "Ada",
		Email: "ada@b.co",
		Photo: &dto.FileRef{Name: "me.jpg", ContentType: "image/jpeg", Content: []byte("jpg")},
	}

	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/user/profile/update" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart body: %v", err)
		}
		if _, _, err := r.FormFile("profilePhoto"); err != nil {
			t.Fatalf("profilePhoto part missing: %v", err)
		}
		writeJSON(t, w, http.StatusOK, map[string]interface{}{
			"_id": "u1", "name": "Ada", "email": "ada@b.co", "role": "student",
		})
	})

	if _, err := c.UpdateProfile(context.Background(), in); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
}
