package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nobatclinic/nobat_backend/internal/repo"
	entappt "github.com/nobatclinic/nobat_backend/internal/repo/appointment"
	"github.com/nobatclinic/nobat_backend/internal/repo/enttest"
	"github.com/nobatclinic/nobat_backend/internal/service/schedule"
)

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return New(client, nil), client
}

func newTestPatient(t *testing.T, client *repo.Client) *repo.Patient {
	t.Helper()
	p, err := client.Patient.Create().
		SetFullName("Sara Mohammadi").
		SetPhone("+989121234567").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return p
}

// dateAhead returns a normalized date n days from now. Using future
// dates keeps the 24h window open for patient actions.
func dateAhead(n int) time.Time {
	return schedule.NormalizeDate(time.Now().AddDate(0, 0, n))
}

func TestCreateDefaults(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := newTestPatient(t, client)

	appt, err := svc.Create(ctx, CreateRequest{
		PatientID: p.ID,
		Date:      dateAhead(3),
		TimeSlot:  "09:00",
		Reason:    "back pain",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if appt.Status != entappt.StatusScheduled {
		t.Errorf("status = %s, want scheduled", appt.Status)
	}
	if appt.VisitType != entappt.VisitTypeNew {
		t.Errorf("visit_type = %s, want new", appt.VisitType)
	}
	if appt.PaymentMethod != entappt.PaymentMethodCash {
		t.Errorf("payment_method = %s, want cash", appt.PaymentMethod)
	}
	if appt.PaymentStatus != entappt.PaymentStatusPending {
		t.Errorf("payment_status = %s, want pending", appt.PaymentStatus)
	}

	// First booking clears the new-patient flag.
	p2, err := client.Patient.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("reload patient: %v", err)
	}
	if p2.IsNew {
		t.Error("is_new still set after first booking")
	}
}

func TestCreateDerivesPaidForNonCash(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := newTestPatient(t, client)

	insurance := "insurance"
	appt, err := svc.Create(ctx, CreateRequest{
		PatientID:     p.ID,
		Date:          dateAhead(3),
		TimeSlot:      "10:00",
		Reason:        "checkup",
		PaymentMethod: &insurance,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if appt.PaymentStatus != entappt.PaymentStatusPaid {
		t.Errorf("payment_status = %s, want paid", appt.PaymentStatus)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := newTestPatient(t, client)

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name:    "unknown slot label",
			req:     CreateRequest{PatientID: p.ID, Date: dateAhead(3), TimeSlot: "13:00", Reason: "x"},
			wantErr: ErrInvalidSlot,
		},
		{
			name:    "missing reason",
			req:     CreateRequest{PatientID: p.ID, Date: dateAhead(3), TimeSlot: "09:00", Reason: "  "},
			wantErr: ErrMissingReason,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// Mirrors the full booking scenario: book, conflict, cancel frees the
// slot, rebook succeeds.
func TestSlotConflictAndRelease(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := newTestPatient(t, client)
	schedSvc := schedule.New(client)

	date := dateAhead(5)

	first, err := svc.Create(ctx, CreateRequest{
		PatientID: p.ID, Date: date, TimeSlot: "09:00", Reason: "visit",
	})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err = svc.Create(ctx, CreateRequest{
		PatientID: p.ID, Date: date, TimeSlot: "09:00", Reason: "visit",
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("second create: got %v, want ErrSlotTaken", err)
	}

	admin := Actor{Role: RoleAdmin}
	if _, err := svc.Cancel(ctx, first.ID, admin, nil); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	avail, err := schedSvc.AvailableSlots(ctx, date)
	if err != nil {
		t.Fatalf("available slots: %v", err)
	}
	found := false
	for _, s := range avail {
		if s == "09:00" {
			found = true
		}
	}
	if !found {
		t.Error("cancelled slot 09:00 not back in the available set")
	}

	if _, err := svc.Create(ctx, CreateRequest{
		PatientID: p.ID, Date: date, TimeSlot: "09:00", Reason: "visit",
	}); err != nil {
		t.Fatalf("rebook after cancel: %v", err)
	}
}

func TestListOrdering(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := newTestPatient(t, client)

	// Inserted out of chronological order on purpose.
	bookings := []struct {
		date time.Time
		slot string
	}{
		{dateAhead(5), "09:30"},
		{dateAhead(3), "17:00"},
		{dateAhead(5), "09:00"},
	}
	for _, bk := range bookings {
		if _, err := svc.Create(ctx, CreateRequest{
			PatientID: p.ID, Date: bk.date, TimeSlot: bk.slot, Reason: "follow up",
		}); err != nil {
			t.Fatalf("create %s %s: %v", bk.date.Format("2006-01-02"), bk.slot, err)
		}
	}

	own, err := svc.ListForPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("list for patient: %v", err)
	}
	if len(own) != 3 {
		t.Fatalf("patient list len = %d, want 3", len(own))
	}
	for i := 1; i < len(own); i++ {
		if own[i].Date.Before(own[i-1].Date) {
			t.Errorf("patient list out of date order at %d: %s before %s",
				i, own[i].Date.Format("2006-01-02"), own[i-1].Date.Format("2006-01-02"))
		}
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("full list len = %d, want 3", len(all))
	}
	wantSlots := []string{"17:00", "09:00", "09:30"}
	for i, slot := range wantSlots {
		if all[i].TimeSlot != slot {
			t.Errorf("full list[%d] = %s %s, want slot %s",
				i, all[i].Date.Format("2006-01-02"), all[i].TimeSlot, slot)
		}
	}
}

func TestCancelRules(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	owner := newTestPatient(t, client)
	other, err := client.Patient.Create().
		SetFullName("Ali Rezaei").
		SetPhone("+989351112233").
		Save(ctx)
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	appt, err := svc.Create(ctx, CreateRequest{
		PatientID: owner.ID, Date: dateAhead(5), TimeSlot: "11:00", Reason: "visit",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A different patient cannot cancel.
	if _, err := svc.Cancel(ctx, appt.ID, Actor{ID: other.ID, Role: RolePatient}, nil); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign cancel: got %v, want ErrForbidden", err)
	}

	// Owner inside the window.
	cancelled, err := svc.Cancel(ctx, appt.ID, Actor{ID: owner.ID, Role: RolePatient}, nil)
	if err != nil {
		t.Fatalf("owner cancel: %v", err)
	}
	if cancelled.Status != entappt.StatusCancelled {
		t.Errorf("status = %s, want cancelled", cancelled.Status)
	}

	// Re-cancel is a no-op returning the stored row.
	again, err := svc.Cancel(ctx, appt.ID, Actor{ID: owner.ID, Role: RolePatient}, nil)
	if err != nil {
		t.Fatalf("re-cancel: %v", err)
	}
	if again.Status != entappt.StatusCancelled {
		t.Errorf("re-cancel status = %s, want cancelled", again.Status)
	}
}

func TestCancelWindowClosedForPatient(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := newTestPatient(t, client)

	// Today's date puts the appointment well inside the 24h window.
	appt, err := svc.Create(ctx, CreateRequest{
		PatientID: p.ID, Date: schedule.NormalizeDate(time.Now()), TimeSlot: "20:30", Reason: "visit",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Cancel(ctx, appt.ID, Actor{ID: p.ID, Role: RolePatient}, nil); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("patient cancel: got %v, want ErrWindowClosed", err)
	}

	// Admins can cancel at any time.
	if _, err := svc.Cancel(ctx, appt.ID, Actor{Role: RoleAdmin}, nil); err != nil {
		t.Errorf("admin cancel: %v", err)
	}
}

func TestUpdateAsAdmin(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := newTestPatient(t, client)

	date := dateAhead(4)
	appt, err := svc.Create(ctx, CreateRequest{
		PatientID: p.ID, Date: date, TimeSlot: "09:00", Reason: "visit",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{
		PatientID: p.ID, Date: date, TimeSlot: "09:30", Reason: "visit",
	}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	// Partial update: only notes; everything else keeps its value.
	notes := "bring previous scans"
	updated, err := svc.UpdateAsAdmin(ctx, appt.ID, UpdateRequest{Notes: &notes})
	if err != nil {
		t.Fatalf("update notes: %v", err)
	}
	if updated.Reason != "visit" || updated.TimeSlot != "09:00" {
		t.Error("partial update touched unset fields")
	}
	if updated.Notes == nil || *updated.Notes != notes {
		t.Error("notes not written")
	}

	// Moving onto a taken slot fails.
	taken := "09:30"
	if _, err := svc.UpdateAsAdmin(ctx, appt.ID, UpdateRequest{TimeSlot: &taken}); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("move to taken slot: got %v, want ErrSlotTaken", err)
	}

	// Re-saving the appointment's own slot passes the guard.
	own := "09:00"
	if _, err := svc.UpdateAsAdmin(ctx, appt.ID, UpdateRequest{TimeSlot: &own}); err != nil {
		t.Errorf("re-save own slot: %v", err)
	}

	// Lifecycle through the transition table.
	completed := "completed"
	if _, err := svc.UpdateAsAdmin(ctx, appt.ID, UpdateRequest{Status: &completed}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	scheduled := "scheduled"
	if _, err := svc.UpdateAsAdmin(ctx, appt.ID, UpdateRequest{Status: &scheduled}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("reopen completed: got %v, want ErrInvalidTransition", err)
	}

	if _, err := svc.UpdateAsAdmin(ctx, uuid.New(), UpdateRequest{Notes: &notes}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}
}

func TestEditRequestLifecycle(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := newTestPatient(t, client)
	owner := Actor{ID: p.ID, Role: RolePatient}

	appt, err := svc.Create(ctx, CreateRequest{
		PatientID: p.ID, Date: dateAhead(5), TimeSlot: "10:00", Reason: "visit",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Submit stages the proposal without touching the live slot.
	staged, err := svc.SubmitEditRequest(ctx, appt.ID, owner, EditRequest{
		NewDate: dateAhead(7), NewTime: "17:00", Reason: "work conflict",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if staged.EditStatus == nil || *staged.EditStatus != entappt.EditStatusPending {
		t.Fatal("edit_status not pending after submit")
	}
	if staged.TimeSlot != "10:00" {
		t.Error("submit moved the live slot")
	}

	// Only one pending request at a time.
	if _, err := svc.SubmitEditRequest(ctx, appt.ID, owner, EditRequest{
		NewDate: dateAhead(8), NewTime: "18:00", Reason: "again",
	}); !errors.Is(err, ErrEditPending) {
		t.Errorf("second submit: got %v, want ErrEditPending", err)
	}

	// Approval commits the staged slot and clears the stage.
	approved, err := svc.ApproveEditRequest(ctx, appt.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !approved.Date.Equal(dateAhead(7)) || approved.TimeSlot != "17:00" {
		t.Error("approval did not commit the proposal")
	}
	if approved.EditStatus == nil || *approved.EditStatus != entappt.EditStatusApproved {
		t.Error("edit_status not approved")
	}
	if approved.EditDate != nil || approved.EditTimeSlot != nil {
		t.Error("stage not cleared after approval")
	}

	// Terminal for this request instance; a new cycle may start.
	if _, err := svc.ApproveEditRequest(ctx, appt.ID); !errors.Is(err, ErrNoPendingEdit) {
		t.Errorf("re-approve: got %v, want ErrNoPendingEdit", err)
	}
	if _, err := svc.SubmitEditRequest(ctx, appt.ID, owner, EditRequest{
		NewDate: dateAhead(9), NewTime: "19:00", Reason: "new cycle",
	}); err != nil {
		t.Errorf("fresh submit after approval: %v", err)
	}
}

func TestApproveRevalidatesSlot(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := newTestPatient(t, client)
	owner := Actor{ID: p.ID, Role: RolePatient}

	appt, err := svc.Create(ctx, CreateRequest{
		PatientID: p.ID, Date: dateAhead(5), TimeSlot: "10:00", Reason: "visit",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	target := dateAhead(7)
	if _, err := svc.SubmitEditRequest(ctx, appt.ID, owner, EditRequest{
		NewDate: target, NewTime: "17:00", Reason: "move",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Someone books the proposed slot before the admin acts.
	if _, err := svc.Create(ctx, CreateRequest{
		PatientID: p.ID, Date: target, TimeSlot: "17:00", Reason: "walk-in",
	}); err != nil {
		t.Fatalf("competing create: %v", err)
	}

	if _, err := svc.ApproveEditRequest(ctx, appt.ID); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("approve: got %v, want ErrSlotTaken", err)
	}
}

func TestRejectKeepsProposal(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := newTestPatient(t, client)
	owner := Actor{ID: p.ID, Role: RolePatient}

	appt, err := svc.Create(ctx, CreateRequest{
		PatientID: p.ID, Date: dateAhead(5), TimeSlot: "10:00", Reason: "visit",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.SubmitEditRequest(ctx, appt.ID, owner, EditRequest{
		NewDate: dateAhead(7), NewTime: "17:00", Reason: "move",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rejected, err := svc.RejectEditRequest(ctx, appt.ID, "schedule conflict")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.EditStatus == nil || *rejected.EditStatus != entappt.EditStatusRejected {
		t.Error("edit_status not rejected")
	}
	if rejected.Date.Equal(dateAhead(7)) || rejected.TimeSlot == "17:00" {
		t.Error("reject moved the live slot")
	}
	// Proposal kept for display alongside the decision.
	if rejected.EditReason == nil || *rejected.EditReason != "move" {
		t.Error("staged reason lost on reject")
	}
	if rejected.EditRejectReason != "schedule conflict" {
		t.Error("reject reason not recorded")
	}
}

func TestEditRequestGuards(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := newTestPatient(t, client)
	other, err := client.Patient.Create().
		SetFullName("Ali Rezaei").
		SetPhone("+989351112233").
		Save(ctx)
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	owner := Actor{ID: p.ID, Role: RolePatient}

	appt, err := svc.Create(ctx, CreateRequest{
		PatientID: p.ID, Date: dateAhead(5), TimeSlot: "10:00", Reason: "visit",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tests := []struct {
		name    string
		actor   Actor
		req     EditRequest
		wantErr error
	}{
		{
			name:    "non-owner forbidden",
			actor:   Actor{ID: other.ID, Role: RolePatient},
			req:     EditRequest{NewDate: dateAhead(7), NewTime: "17:00", Reason: "x"},
			wantErr: ErrForbidden,
		},
		{
			name:    "past-dated proposal",
			actor:   owner,
			req:     EditRequest{NewDate: dateAhead(-1), NewTime: "17:00", Reason: "x"},
			wantErr: ErrPastDate,
		},
		{
			name:    "unknown proposed slot",
			actor:   owner,
			req:     EditRequest{NewDate: dateAhead(7), NewTime: "16:00", Reason: "x"},
			wantErr: ErrInvalidSlot,
		},
		{
			name:    "missing reason",
			actor:   owner,
			req:     EditRequest{NewDate: dateAhead(7), NewTime: "17:00", Reason: " "},
			wantErr: ErrMissingReason,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.SubmitEditRequest(ctx, appt.ID, tt.actor, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}

	// Cancelled appointments take no edit requests.
	if _, err := svc.Cancel(ctx, appt.ID, Actor{Role: RoleAdmin}, nil); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.SubmitEditRequest(ctx, appt.ID, owner, EditRequest{
		NewDate: dateAhead(7), NewTime: "17:00", Reason: "x",
	}); !errors.Is(err, ErrNotEditable) {
		t.Errorf("edit after cancel: got %v, want ErrNotEditable", err)
	}
}

func TestEditWindowClosed(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := newTestPatient(t, client)

	appt, err := svc.Create(ctx, CreateRequest{
		PatientID: p.ID, Date: schedule.NormalizeDate(time.Now()), TimeSlot: "20:30", Reason: "visit",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.SubmitEditRequest(ctx, appt.ID, Actor{ID: p.ID, Role: RolePatient}, EditRequest{
		NewDate: dateAhead(7), NewTime: "17:00", Reason: "too late",
	}); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("got %v, want ErrWindowClosed", err)
	}
}
