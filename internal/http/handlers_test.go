package http_test

import (
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func Test_Register_Login_Profile(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	env.registerDonor("John", "john@example.com", "secret1")

	// duplicate registration is rejected
	w := env.do("POST", "/api/donors/register",
		`{"name":"John2","email":"john@example.com","password":"secret2","phone":"+1","address":"x"}`, "")
	if w.Code != 400 {
		t.Fatalf("duplicate register: %d %s", w.Code, w.Body.String())
	}

	// login with the same plaintext succeeds
	w = env.do("POST", "/api/donors/login", `{"email":"john@example.com","password":"secret1"}`, "")
	if w.Code != 200 {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	tok, _ := env.data(w)["token"].(string)

	// wrong password and unknown email answer identically
	w = env.do("POST", "/api/donors/login", `{"email":"john@example.com","password":"wrong"}`, "")
	if w.Code != 401 {
		t.Fatalf("bad password: %d", w.Code)
	}
	bad := w.Body.String()
	w = env.do("POST", "/api/donors/login", `{"email":"nobody@example.com","password":"secret1"}`, "")
	if w.Code != 401 || w.Body.String() != bad {
		t.Fatalf("login failure leaks which part failed: %s vs %s", bad, w.Body.String())
	}

	// admin login failures use the same non-committal body
	env.seedAdmin("boss@example.com")
	w = env.do("POST", "/api/admin/login", `{"email":"boss@example.com","password":"wrong"}`, "")
	if w.Code != 401 || w.Body.String() != bad {
		t.Fatalf("admin bad password: %d %s", w.Code, w.Body.String())
	}
	w = env.do("POST", "/api/admin/login", `{"email":"ghost@example.com","password":"wrong"}`, "")
	if w.Code != 401 || w.Body.String() != bad {
		t.Fatalf("admin unknown email: %d %s", w.Code, w.Body.String())
	}

	// the stored password is never retrievable from any read endpoint
	w = env.do("GET", "/api/donors/profile", "", tok)
	if w.Code != 200 {
		t.Fatalf("profile: %d %s", w.Code, w.Body.String())
	}
	if strings.Contains(strings.ToLower(w.Body.String()), "password") {
		t.Fatalf("profile response exposes password material: %s", w.Body.String())
	}

	// partial profile update with password change
	w = env.do("PATCH", "/api/donors/profile", `{"name":"Johnny","password":"newsecret"}`, tok)
	if w.Code != 200 {
		t.Fatalf("update profile: %d %s", w.Code, w.Body.String())
	}
	donor, _ := env.data(w)["donor"].(map[string]any)
	if donor["name"] != "Johnny" || donor["email"] != "john@example.com" {
		t.Fatalf("partial update wrong: %v", donor)
	}
	w = env.do("POST", "/api/donors/login", `{"email":"john@example.com","password":"newsecret"}`, "")
	if w.Code != 200 {
		t.Fatalf("login after password change: %d", w.Code)
	}
	w = env.do("POST", "/api/donors/login", `{"email":"john@example.com","password":"secret1"}`, "")
	if w.Code != 401 {
		t.Fatalf("old password still works: %d", w.Code)
	}
}

func Test_DonationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	adminTok := env.seedAdmin("admin@example.com")
	orgID := env.createOrg(adminTok, "RedCross", "redcross@example.com")
	donorTok := env.registerDonor("Ann", "a@x.com", "secret1")

	// a client-supplied status is ignored: the donation starts pending
	w := env.do("POST", "/api/donations",
		`{"organizationId":"`+orgID+`","amount":100,"paymentMethod":"upi","status":"completed"}`, donorTok)
	if w.Code != 201 {
		t.Fatalf("create donation: %d %s", w.Code, w.Body.String())
	}
	donation, _ := env.data(w)["donation"].(map[string]any)
	if donation["status"] != "pending" {
		t.Fatalf("new donation not pending: %v", donation["status"])
	}
	id, _ := donation["id"].(string)

	// donating to a missing organization is NotFound
	w = env.do("POST", "/api/donations",
		`{"organizationId":"64f1b2a3c4d5e6f708192a3b","amount":5,"paymentMethod":"upi"}`, donorTok)
	if w.Code != 404 {
		t.Fatalf("missing org: %d %s", w.Code, w.Body.String())
	}

	// below-minimum amount is a validation error
	w = env.do("POST", "/api/donations",
		`{"organizationId":"`+orgID+`","amount":0.5,"paymentMethod":"upi"}`, donorTok)
	if w.Code != 400 {
		t.Fatalf("below minimum: %d %s", w.Code, w.Body.String())
	}

	// donor sees exactly one pending donation of amount 100
	w = env.do("GET", "/api/donations/donor", "", donorTok)
	if w.Code != 200 {
		t.Fatalf("donor list: %d %s", w.Code, w.Body.String())
	}
	list, _ := env.data(w)["donations"].([]any)
	if len(list) != 1 {
		t.Fatalf("donor list length = %d", len(list))
	}
	first := list[0].(map[string]any)
	if first["status"] != "pending" || first["amount"] != float64(100) {
		t.Fatalf("unexpected listing entry: %v", first)
	}
	org, _ := first["organization"].(map[string]any)
	if org["name"] != "RedCross" {
		t.Fatalf("organization not joined: %v", first)
	}

	// status transition is admin-only, with 401/403 ordering
	w = env.do("PATCH", "/api/donations/admin/"+id+"/status", `{"status":"completed"}`, "")
	if w.Code != 401 {
		t.Fatalf("no token: %d", w.Code)
	}
	w = env.do("PATCH", "/api/donations/admin/"+id+"/status", `{"status":"completed"}`, donorTok)
	if w.Code != 403 {
		t.Fatalf("donor token: %d", w.Code)
	}

	w = env.do("PATCH", "/api/donations/admin/"+id+"/status",
		`{"status":"completed","transactionId":"tx-1"}`, adminTok)
	if w.Code != 200 {
		t.Fatalf("complete: %d %s", w.Code, w.Body.String())
	}

	w = env.do("GET", "/api/donations/donor", "", donorTok)
	list, _ = env.data(w)["donations"].([]any)
	if list[0].(map[string]any)["status"] != "completed" {
		t.Fatalf("donor list not updated: %v", list[0])
	}

	// re-applying the same status is a no-op success
	w = env.do("PATCH", "/api/donations/admin/"+id+"/status", `{"status":"completed"}`, adminTok)
	if w.Code != 200 {
		t.Fatalf("idempotent re-apply: %d %s", w.Code, w.Body.String())
	}

	// completed is terminal
	w = env.do("PATCH", "/api/donations/admin/"+id+"/status", `{"status":"failed"}`, adminTok)
	if w.Code != 400 {
		t.Fatalf("terminal state left: %d %s", w.Code, w.Body.String())
	}

	// unknown status value is rejected before persistence
	w = env.do("PATCH", "/api/donations/admin/"+id+"/status", `{"status":"refunded"}`, adminTok)
	if w.Code != 400 {
		t.Fatalf("illegal enum: %d", w.Code)
	}

	// unknown donation id is NotFound
	w = env.do("PATCH", "/api/donations/admin/64f1b2a3c4d5e6f708192a3b/status",
		`{"status":"completed"}`, adminTok)
	if w.Code != 404 {
		t.Fatalf("missing donation: %d", w.Code)
	}
}

func Test_DonorIsolation(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	adminTok := env.seedAdmin("admin@example.com")
	orgID := env.createOrg(adminTok, "WFP", "wfp@example.com")
	tokA := env.registerDonor("A", "a@x.com", "secret1")
	tokB := env.registerDonor("B", "b@x.com", "secret1")

	for i := 0; i < 2; i++ {
		w := env.do("POST", "/api/donations",
			`{"organizationId":"`+orgID+`","amount":10,"paymentMethod":"upi"}`, tokA)
		if w.Code != 201 {
			t.Fatalf("donate A: %d %s", w.Code, w.Body.String())
		}
	}
	w := env.do("POST", "/api/donations",
		`{"organizationId":"`+orgID+`","amount":30,"paymentMethod":"upi"}`, tokB)
	if w.Code != 201 {
		t.Fatalf("donate B: %d %s", w.Code, w.Body.String())
	}

	w = env.do("GET", "/api/donations/donor", "", tokA)
	if got, _ := env.data(w)["donations"].([]any); len(got) != 2 {
		t.Fatalf("A sees %d donations, want 2", len(got))
	}
	w = env.do("GET", "/api/donations/donor", "", tokB)
	if got, _ := env.data(w)["donations"].([]any); len(got) != 1 {
		t.Fatalf("B sees %d donations, want 1", len(got))
	}

	// admin sees all, with filtered aggregates
	w = env.do("GET", "/api/donations/admin", "", adminTok)
	d := env.data(w)
	if got, _ := d["donations"].([]any); len(got) != 3 {
		t.Fatalf("admin sees %d donations, want 3", len(got))
	}
	stats, _ := d["stats"].(map[string]any)
	if stats["totalCount"] != float64(3) || stats["totalAmount"] != float64(50) ||
		stats["pendingCount"] != float64(3) {
		t.Fatalf("aggregates wrong: %v", stats)
	}

	w = env.do("GET", "/api/donations/admin?status=completed", "", adminTok)
	d = env.data(w)
	if got, _ := d["donations"].([]any); len(got) != 0 {
		t.Fatalf("filtered list wrong: %v", got)
	}
}

func Test_AdminDonationDateFilter(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	adminTok := env.seedAdmin("admin@example.com")
	orgID := env.createOrg(adminTok, "Shelter", "shelter@example.com")
	donorTok := env.registerDonor("Dee", "dee@x.com", "secret1")

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		w := env.do("POST", "/api/donations",
			`{"organizationId":"`+orgID+`","amount":10,"paymentMethod":"upi"}`, donorTok)
		if w.Code != 201 {
			t.Fatalf("donate: %d %s", w.Code, w.Body.String())
		}
		d, _ := env.data(w)["donation"].(map[string]any)
		ids = append(ids, d["id"].(string))
	}

	// spread the records across dates; the API always stamps "now"
	days := []time.Time{
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC),
		time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC),
	}
	for i, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := env.Store.DB.Collection("donations").UpdateOne(env.Ctx,
			bson.M{"_id": oid}, bson.M{"$set": bson.M{"created_at": days[i]}}); err != nil {
			t.Fatalf("backdate: %v", err)
		}
	}

	query := func(q string) (int, map[string]any) {
		w := env.do("GET", "/api/donations/admin"+q, "", adminTok)
		if w.Code != 200 {
			t.Fatalf("%s: %d %s", q, w.Code, w.Body.String())
		}
		d := env.data(w)
		list, _ := d["donations"].([]any)
		stats, _ := d["stats"].(map[string]any)
		return len(list), stats
	}

	if got, _ := query("?from=2026-03-05"); got != 2 {
		t.Fatalf("from filter: got %d, want 2", got)
	}
	// a donation late on the `to` day is still inside the range
	if got, _ := query("?to=2026-03-10"); got != 2 {
		t.Fatalf("to filter inclusive: got %d, want 2", got)
	}
	got, stats := query("?from=2026-03-05&to=2026-03-15")
	if got != 1 {
		t.Fatalf("range filter: got %d, want 1", got)
	}
	// aggregates are computed over the same filtered set
	if stats["totalCount"] != float64(1) || stats["totalAmount"] != float64(10) {
		t.Fatalf("filtered aggregates wrong: %v", stats)
	}
	if got, _ := query("?from=2026-03-11&to=2026-03-19"); got != 0 {
		t.Fatalf("empty range: got %d, want 0", got)
	}

	w := env.do("GET", "/api/donations/admin?from=March-1", "", adminTok)
	if w.Code != 400 {
		t.Fatalf("bad date: %d %s", w.Code, w.Body.String())
	}
}

func Test_AdminUserManagement(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	adminTok := env.seedAdmin("admin@example.com")
	env.registerDonor("One", "one@x.com", "secret1")
	env.registerDonor("Two", "two@x.com", "secret1")

	w := env.do("GET", "/api/admin/users", "", adminTok)
	if w.Code != 200 {
		t.Fatalf("list users: %d %s", w.Code, w.Body.String())
	}
	users, _ := env.data(w)["users"].([]any)
	if len(users) != 2 {
		t.Fatalf("user list length = %d", len(users))
	}
	var oneID string
	for _, u := range users {
		m := u.(map[string]any)
		if m["email"] == "one@x.com" {
			oneID, _ = m["id"].(string)
		}
	}
	if oneID == "" {
		t.Fatalf("donor missing from user list: %v", users)
	}

	// partial update; the supplied password is re-hashed
	w = env.do("PUT", "/api/admin/users/"+oneID, `{"name":"Renamed","password":"changed1"}`, adminTok)
	if w.Code != 200 {
		t.Fatalf("update user: %d %s", w.Code, w.Body.String())
	}
	u, _ := env.data(w)["user"].(map[string]any)
	if u["name"] != "Renamed" || u["email"] != "one@x.com" {
		t.Fatalf("partial update wrong: %v", u)
	}
	if w = env.do("POST", "/api/donors/login", `{"email":"one@x.com","password":"changed1"}`, ""); w.Code != 200 {
		t.Fatalf("login after admin password change: %d", w.Code)
	}
	if w = env.do("POST", "/api/donors/login", `{"email":"one@x.com","password":"secret1"}`, ""); w.Code != 401 {
		t.Fatalf("old password still works: %d", w.Code)
	}

	// taking another donor's email is rejected
	if w = env.do("PUT", "/api/admin/users/"+oneID, `{"email":"two@x.com"}`, adminTok); w.Code != 400 {
		t.Fatalf("duplicate email: %d %s", w.Code, w.Body.String())
	}

	// hard delete; afterwards every access answers NotFound
	if w = env.do("DELETE", "/api/admin/users/"+oneID, "", adminTok); w.Code != 200 {
		t.Fatalf("delete user: %d %s", w.Code, w.Body.String())
	}
	if w = env.do("GET", "/api/admin/users/"+oneID, "", adminTok); w.Code != 404 {
		t.Fatalf("get after delete: %d", w.Code)
	}
	if w = env.do("PUT", "/api/admin/users/"+oneID, `{"name":"X"}`, adminTok); w.Code != 404 {
		t.Fatalf("update after delete: %d", w.Code)
	}
	if w = env.do("DELETE", "/api/admin/users/"+oneID, "", adminTok); w.Code != 404 {
		t.Fatalf("double delete: %d", w.Code)
	}
}

func Test_OrganizationCRUD(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	adminTok := env.seedAdmin("admin@example.com")
	donorTok := env.registerDonor("D", "d@x.com", "secret1")

	// public reads need no token
	w := env.do("GET", "/api/organizations", "", "")
	if w.Code != 200 {
		t.Fatalf("public list: %d", w.Code)
	}

	// unauthenticated writes are 401, donor writes 403
	body := `{"name":"X","description":"d","email":"x@org.com","phone":"1","address":"a","website":"w","category":"Other"}`
	if w = env.do("POST", "/api/organizations", body, ""); w.Code != 401 {
		t.Fatalf("unauth create: %d", w.Code)
	}
	if w = env.do("POST", "/api/organizations", body, donorTok); w.Code != 403 {
		t.Fatalf("donor create: %d", w.Code)
	}

	// unknown category is rejected
	badCat := `{"name":"X","description":"d","email":"x@org.com","phone":"1","address":"a","website":"w","category":"Nope"}`
	if w = env.do("POST", "/api/organizations", badCat, adminTok); w.Code != 400 {
		t.Fatalf("bad category: %d %s", w.Code, w.Body.String())
	}

	id := env.createOrg(adminTok, "Helpers", "helpers@example.com")

	// default-free partial update: only status changes
	w = env.do("PATCH", "/api/organizations/"+id, `{"status":"inactive"}`, adminTok)
	if w.Code != 200 {
		t.Fatalf("patch: %d %s", w.Code, w.Body.String())
	}
	org, _ := env.data(w)["organization"].(map[string]any)
	if org["status"] != "inactive" || org["name"] != "Helpers" {
		t.Fatalf("merge semantics broken: %v", org)
	}

	// delete removes it; a later get and a second delete are NotFound
	if w = env.do("DELETE", "/api/organizations/"+id, "", adminTok); w.Code != 200 {
		t.Fatalf("delete: %d %s", w.Code, w.Body.String())
	}
	if w = env.do("GET", "/api/organizations/"+id, "", ""); w.Code != 404 {
		t.Fatalf("get after delete: %d", w.Code)
	}
	if w = env.do("DELETE", "/api/organizations/"+id, "", adminTok); w.Code != 404 {
		t.Fatalf("double delete: %d", w.Code)
	}
}

func Test_FeedbackFlow(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	adminTok := env.seedAdmin("admin@example.com")
	donorTok := env.registerDonor("Fay", "fay@x.com", "secret1")

	w := env.do("POST", "/api/feedback", `{"message":"love it","category":"general"}`, donorTok)
	if w.Code != 201 {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}
	fb, _ := env.data(w)["feedback"].(map[string]any)
	if fb["status"] != "pending" {
		t.Fatalf("feedback not pending: %v", fb)
	}
	id, _ := fb["id"].(string)

	if w = env.do("POST", "/api/feedback", `{"message":"x","category":"rant"}`, donorTok); w.Code != 400 {
		t.Fatalf("bad category: %d", w.Code)
	}

	w = env.do("GET", "/api/feedback/user", "", donorTok)
	if got, _ := env.data(w)["feedback"].([]any); len(got) != 1 {
		t.Fatalf("own list: %v", got)
	}

	// admin list joins the author in
	w = env.do("GET", "/api/feedback/admin", "", adminTok)
	all, _ := env.data(w)["feedback"].([]any)
	donor, _ := all[0].(map[string]any)["donor"].(map[string]any)
	if donor["email"] != "fay@x.com" {
		t.Fatalf("author not joined: %v", all[0])
	}

	// only admins transition feedback
	if w = env.do("PATCH", "/api/feedback/admin/"+id+"/status", `{"status":"reviewed"}`, donorTok); w.Code != 403 {
		t.Fatalf("donor transition: %d", w.Code)
	}
	w = env.do("PATCH", "/api/feedback/admin/"+id+"/status", `{"status":"reviewed"}`, adminTok)
	if w.Code != 200 {
		t.Fatalf("admin transition: %d %s", w.Code, w.Body.String())
	}
}

func Test_Notifications_And_Stats(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	adminTok := env.seedAdmin("admin@example.com")
	orgID := env.createOrg(adminTok, "EduFund", "edu@example.com")
	donorTok := env.registerDonor("Nia", "nia@x.com", "secret1")

	w := env.do("POST", "/api/donations",
		`{"organizationId":"`+orgID+`","amount":40,"paymentMethod":"credit_card"}`, donorTok)
	if w.Code != 201 {
		t.Fatalf("donate: %d %s", w.Code, w.Body.String())
	}

	// registration and donation produced notifications
	w = env.do("GET", "/api/admin/notifications", "", adminTok)
	ns, _ := env.data(w)["notifications"].([]any)
	if len(ns) < 2 {
		t.Fatalf("expected notifications, got %v", ns)
	}
	w = env.do("GET", "/api/admin/notifications?type=donation", "", adminTok)
	ns, _ = env.data(w)["notifications"].([]any)
	if len(ns) != 1 {
		t.Fatalf("type filter: %v", ns)
	}
	nid, _ := ns[0].(map[string]any)["id"].(string)

	if w = env.do("GET", "/api/admin/notifications", "", donorTok); w.Code != 403 {
		t.Fatalf("donor reads notifications: %d", w.Code)
	}

	if w = env.do("PATCH", "/api/admin/notifications/"+nid+"/read", "", adminTok); w.Code != 200 {
		t.Fatalf("mark read: %d %s", w.Code, w.Body.String())
	}
	if w = env.do("PATCH", "/api/admin/notifications/read-all", "", adminTok); w.Code != 200 {
		t.Fatalf("mark all read: %d %s", w.Code, w.Body.String())
	}
	if w = env.do("DELETE", "/api/admin/notifications/"+nid, "", adminTok); w.Code != 200 {
		t.Fatalf("delete notification: %d", w.Code)
	}
	if w = env.do("DELETE", "/api/admin/notifications/"+nid, "", adminTok); w.Code != 404 {
		t.Fatalf("double delete notification: %d", w.Code)
	}

	// stats are derived fresh over current data
	w = env.do("GET", "/api/admin/stats", "", adminTok)
	stats := env.data(w)
	if stats["totalDonations"] != float64(1) || stats["totalAmount"] != float64(40) ||
		stats["totalOrganizations"] != float64(1) || stats["totalUsers"] != float64(1) {
		t.Fatalf("stats wrong: %v", stats)
	}
}

func Test_Settings(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	adminTok := env.seedAdmin("admin@example.com")

	w := env.do("GET", "/api/admin/settings", "", adminTok)
	if w.Code != 200 {
		t.Fatalf("get settings: %d %s", w.Code, w.Body.String())
	}
	s, _ := env.data(w)["settings"].(map[string]any)
	general, _ := s["general"].(map[string]any)
	if general["platformName"] == "" {
		t.Fatalf("no defaults: %v", s)
	}

	// patch one section, the others stay
	w = env.do("PATCH", "/api/admin/settings",
		`{"donations":{"minimumAmount":5,"paymentMethods":["upi"]}}`, adminTok)
	if w.Code != 200 {
		t.Fatalf("patch settings: %d %s", w.Code, w.Body.String())
	}
	s, _ = env.data(w)["settings"].(map[string]any)
	don, _ := s["donations"].(map[string]any)
	if don["minimumAmount"] != float64(5) {
		t.Fatalf("section not replaced: %v", don)
	}
	general, _ = s["general"].(map[string]any)
	if general["platformName"] != "GiveHub" {
		t.Fatalf("untouched section lost: %v", s)
	}

	if w = env.do("PATCH", "/api/admin/settings", `{}`, adminTok); w.Code != 400 {
		t.Fatalf("empty patch: %d", w.Code)
	}
	if w = env.do("PATCH", "/api/admin/settings",
		`{"donations":{"minimumAmount":1,"paymentMethods":["cash"]}}`, adminTok); w.Code != 400 {
		t.Fatalf("bad payment method: %d", w.Code)
	}
}

func Test_InKindDonation(t *testing.T) {
	env := newTestEnv(t)
	defer env.Close()

	adminTok := env.seedAdmin("admin@example.com")
	orgID := env.createOrg(adminTok, "FoodBank", "food@example.com")
	donorTok := env.registerDonor("Kim", "kim@x.com", "secret1")

	// in-kind donations need a description, not an amount
	w := env.do("POST", "/api/donations",
		`{"organizationId":"`+orgID+`","type":"in_kind"}`, donorTok)
	if w.Code != 400 {
		t.Fatalf("in-kind without description: %d", w.Code)
	}
	// monetary fields in the payload are discarded on an in-kind donation
	w = env.do("POST", "/api/donations",
		`{"organizationId":"`+orgID+`","type":"in_kind","description":"200 blankets","amount":75,"paymentMethod":"upi"}`, donorTok)
	if w.Code != 201 {
		t.Fatalf("in-kind: %d %s", w.Code, w.Body.String())
	}
	d, _ := env.data(w)["donation"].(map[string]any)
	if d["status"] != "pending" || d["type"] != "in_kind" {
		t.Fatalf("in-kind donation wrong: %v", d)
	}
	if d["amount"] != nil || d["paymentMethod"] != "" {
		t.Fatalf("in-kind donation kept monetary fields: %v", d)
	}

	// in-kind money is excluded from monetary totals
	w = env.do("GET", "/api/donations/admin", "", adminTok)
	stats, _ := env.data(w)["stats"].(map[string]any)
	if stats["totalCount"] != float64(1) || stats["totalAmount"] != float64(0) {
		t.Fatalf("aggregates wrong for in-kind: %v", stats)
	}
}
