package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(serverURL string) *Client {
	return NewClient(DefaultClientConfig(serverURL, "test-token"))
}

func TestClient_Self(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/self" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Error("expected bearer token authorization")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 42, "name": "Course Admin"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	user, err := client.Self(context.Background())
	if err != nil {
		t.Fatalf("Self failed: %v", err)
	}
	if user.ID != 42 || user.Name != "Course Admin" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestClient_Self_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"message":"Invalid access token."}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Self(context.Background())
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestClient_ListStudents_Paginated(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/courses/7/users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("enrollment_type[]"); got != "student" {
			t.Errorf("expected student enrollment filter, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			w.Write([]byte(`[{"id": 3, "name": "Carol"}]`))
			return
		}
		next := fmt.Sprintf("%s/api/v1/courses/7/users?page=2&enrollment_type[]=student", server.URL)
		w.Header().Set("Link", fmt.Sprintf(`<%s>; rel="next", <%s>; rel="last"`, next, next))
		w.Write([]byte(`[{"id": 1, "name": "Ann"}, {"id": 2, "name": "Bob"}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	students, err := client.ListStudents(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListStudents failed: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("expected 3 students across pages, got %d", len(students))
	}
	if students[2].Name != "Carol" {
		t.Errorf("expected Carol last, got %q", students[2].Name)
	}
}

func TestClient_CreateGroup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/v1/group_categories/5/groups" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if body["name"] != "Alpha" {
			t.Errorf("expected group name Alpha, got %v", body["name"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 99, "name": "Alpha", "group_category_id": 5}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	group, err := client.CreateGroup(context.Background(), 5, "Alpha", "Project group for Alpha")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if group.ID != 99 || group.GroupCategoryID != 5 {
		t.Errorf("unexpected group: %+v", group)
	}
}

func TestClient_CreateGroup_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"errors":"boom"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateGroup(context.Background(), 5, "Alpha", "")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestClient_AddMember(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/groups/99/memberships" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if body["user_id"] != float64(7) {
			t.Errorf("expected user_id 7, got %v", body["user_id"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 1001, "group_id": 99, "user_id": 7, "moderator": false}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	membership, err := client.AddMember(context.Background(), 99, 7)
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if membership.ID != 1001 || membership.UserID != 7 {
		t.Errorf("unexpected membership: %+v", membership)
	}
}

func TestClient_ListMemberships(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/groups/99/memberships" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1001, "group_id": 99, "user_id": 7, "moderator": true}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	memberships, err := client.ListMemberships(context.Background(), 99)
	if err != nil {
		t.Fatalf("ListMemberships failed: %v", err)
	}
	if len(memberships) != 1 || !memberships[0].Moderator {
		t.Errorf("unexpected memberships: %+v", memberships)
	}
}

func TestClient_SetModerator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/api/v1/groups/99/memberships/1001" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if body["moderator"] != true {
			t.Errorf("expected moderator=true, got %v", body["moderator"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 1001, "moderator": true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if err := client.SetModerator(context.Background(), 99, 1001); err != nil {
		t.Fatalf("SetModerator failed: %v", err)
	}
}

func TestClient_GroupURL(t *testing.T) {
	client := NewClient(DefaultClientConfig("https://canvas.school.edu/", "tok"))
	if got := client.GroupURL(123); got != "https://canvas.school.edu/groups/123" {
		t.Errorf("unexpected group URL %q", got)
	}
}

func TestNextLink(t *testing.T) {
	header := `<https://x.edu/api/v1/courses/1/users?page=2>; rel="next", <https://x.edu/api/v1/courses/1/users?page=9>; rel="last"`
	if got := nextLink(header); got != "https://x.edu/api/v1/courses/1/users?page=2" {
		t.Errorf("unexpected next link %q", got)
	}
	if got := nextLink(`<https://x.edu/p1>; rel="last"`); got != "" {
		t.Errorf("expected empty next link, got %q", got)
	}
	if got := nextLink(""); got != "" {
		t.Errorf("expected empty next link for empty header, got %q", got)
	}
}
