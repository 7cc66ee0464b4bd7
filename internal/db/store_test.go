package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/chronodesk/chronodesk/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func workType(t *testing.T, store *Store) *models.SessionType {
	t.Helper()
	st, err := store.SessionTypeByName("Work")
	if err != nil {
		t.Fatalf("seeded Work category missing: %v", err)
	}
	return st
}

func logSession(t *testing.T, store *Store, typeID uint, date string, hours, rate float64) *models.Session {
	t.Helper()
	req := models.NewSession{
		SessionTypeID: typeID,
		ProjectName:   "Client Site",
		Date:          date,
		Hours:         hours,
	}
	if rate > 0 {
		req.PayType = models.PayHourly
		req.HourlyRate = &rate
	}
	session, err := store.CreateSession(req)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}

func TestOpen_SeedsDefaultCategories(t *testing.T) {
	store := openTestStore(t)

	types, err := store.ListSessionTypes()
	if err != nil {
		t.Fatalf("ListSessionTypes failed: %v", err)
	}
	if len(types) != 2 {
		t.Fatalf("seeded categories = %d, want 2", len(types))
	}
	work := workType(t, store)
	if work.HourlyRate == nil || *work.HourlyRate != 30 {
		t.Errorf("Work default rate = %v, want 30", work.HourlyRate)
	}
}

func TestCreateSession_Validation(t *testing.T) {
	store := openTestStore(t)
	work := workType(t, store)

	_, err := store.CreateSession(models.NewSession{
		SessionTypeID: work.ID,
		ProjectName:   "x",
		Date:          "2026-08-28",
		Hours:         25,
	})
	if err == nil {
		t.Error("25h session should fail validation")
	}

	_, err = store.CreateSession(models.NewSession{
		SessionTypeID: 9999,
		ProjectName:   "x",
		Date:          "2026-08-28",
		Hours:         2,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown category error = %v, want ErrNotFound", err)
	}
}

func TestCreateSession_DefaultsToCategoryRate(t *testing.T) {
	store := openTestStore(t)
	work := workType(t, store)

	// hourly with no explicit rate picks up Work's seeded $30
	session, err := store.CreateSession(models.NewSession{
		SessionTypeID: work.ID,
		ProjectName:   "Client Site",
		Date:          "2026-08-28",
		Hours:         2,
		PayType:       models.PayHourly,
	})
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if session.HourlyRate == nil || *session.HourlyRate != 30 {
		t.Fatalf("hourly rate = %v, want category default 30", session.HourlyRate)
	}
	if session.Pay() != 60 {
		t.Errorf("pay = %v, want 60", session.Pay())
	}

	// an explicit rate wins over the category default
	rate := 45.0
	session, err = store.CreateSession(models.NewSession{
		SessionTypeID: work.ID,
		ProjectName:   "Client Site",
		Date:          "2026-08-28",
		Hours:         1,
		PayType:       models.PayHourly,
		HourlyRate:    &rate,
	})
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if session.HourlyRate == nil || *session.HourlyRate != 45 {
		t.Errorf("hourly rate = %v, want explicit 45", session.HourlyRate)
	}

	// a category without a default leaves the rate unset
	study, err := store.SessionTypeByName("Study")
	if err != nil {
		t.Fatalf("seeded Study category missing: %v", err)
	}
	session, err = store.CreateSession(models.NewSession{
		SessionTypeID: study.ID,
		ProjectName:   "Client Site",
		Date:          "2026-08-28",
		Hours:         1,
		PayType:       models.PayHourly,
	})
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if session.HourlyRate != nil {
		t.Errorf("hourly rate = %v, want nil for rateless category", *session.HourlyRate)
	}
}

func TestCreateInvoice_UsesCategoryRate(t *testing.T) {
	store := openTestStore(t)
	work := workType(t, store)

	session, err := store.CreateSession(models.NewSession{
		SessionTypeID: work.ID,
		ProjectName:   "Client Site",
		Date:          "2026-08-28",
		Hours:         4,
		PayType:       models.PayHourly,
	})
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	invoice, err := store.CreateInvoice(models.NewInvoice{
		ClientName: "Acme",
		DueDate:    "2026-09-28",
		SessionIDs: []uint{session.ID},
	})
	if err != nil {
		t.Fatalf("failed to create invoice: %v", err)
	}
	if len(invoice.Items) != 1 {
		t.Fatalf("invoice has %d items, want 1", len(invoice.Items))
	}
	if invoice.Items[0].Rate != 30 {
		t.Errorf("item rate = %v, want category default 30", invoice.Items[0].Rate)
	}
	if invoice.Subtotal != 120 {
		t.Errorf("subtotal = %v, want 120", invoice.Subtotal)
	}
}

func TestCreateSession_TouchesProjectCache(t *testing.T) {
	store := openTestStore(t)
	work := workType(t, store)

	logSession(t, store, work.ID, "2026-08-27", 2, 0)
	logSession(t, store, work.ID, "2026-08-28", 3, 0)

	names, err := store.ProjectsByType(work.ID)
	if err != nil {
		t.Fatalf("ProjectsByType failed: %v", err)
	}
	if len(names) != 1 || names[0] != "Client Site" {
		t.Errorf("cached projects = %v, want [Client Site]", names)
	}
}

func TestSessionsInRange_InclusiveBounds(t *testing.T) {
	store := openTestStore(t)
	work := workType(t, store)

	logSession(t, store, work.ID, "2026-08-20", 1, 0)
	logSession(t, store, work.ID, "2026-08-25", 1, 0)
	logSession(t, store, work.ID, "2026-08-28", 1, 0)

	sessions, err := store.SessionsInRange("2026-08-20", "2026-08-25")
	if err != nil {
		t.Fatalf("SessionsInRange failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("sessions in range = %d, want 2 (bounds inclusive)", len(sessions))
	}
	if sessions[0].SessionType.Name != "Work" {
		t.Error("expected the category relation to be preloaded")
	}
}

func TestGoalLifecycle(t *testing.T) {
	store := openTestStore(t)

	goal, err := store.CreateGoal(models.NewGoal{
		GoalType:     models.GoalSavings,
		Name:         "Vacation",
		TargetAmount: 1000,
		CreatedDate:  "2026-08-28",
	})
	if err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	if err := store.AddContribution(goal.ID, 250); err != nil {
		t.Fatalf("AddContribution failed: %v", err)
	}
	if err := store.AddContribution(goal.ID, -50); err == nil {
		t.Error("negative contribution should fail")
	}

	got, err := store.GetGoal(goal.ID)
	if err != nil {
		t.Fatalf("GetGoal failed: %v", err)
	}
	if got.CurrentAmount != 250 {
		t.Errorf("CurrentAmount = %f, want 250", got.CurrentAmount)
	}

	if _, err := store.GetGoal(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing goal error = %v, want ErrNotFound", err)
	}

	if _, err := store.CreateGoal(models.NewGoal{
		GoalType:    models.GoalSavings,
		Name:        "Broken",
		CreatedDate: "2026-08-28",
	}); err == nil {
		t.Error("zero target amount should fail validation")
	}
}

func TestInvoiceNumbering(t *testing.T) {
	store := openTestStore(t)
	work := workType(t, store)
	s1 := logSession(t, store, work.ID, "2026-08-27", 2, 50)
	s2 := logSession(t, store, work.ID, "2026-08-28", 3, 50)

	first, err := store.CreateInvoice(models.NewInvoice{
		ClientName: "Acme",
		DueDate:    "2026-09-30",
		TaxRate:    10,
		SessionIDs: []uint{s1.ID},
	})
	if err != nil {
		t.Fatalf("CreateInvoice failed: %v", err)
	}
	if first.InvoiceNumber != "INV-0001" {
		t.Errorf("first invoice number = %s, want INV-0001", first.InvoiceNumber)
	}
	if first.Subtotal != 100 || first.TaxAmount != 10 || first.Total != 110 {
		t.Errorf("invoice totals = %f/%f/%f, want 100/10/110", first.Subtotal, first.TaxAmount, first.Total)
	}

	second, err := store.CreateInvoice(models.NewInvoice{
		ClientName: "Acme",
		DueDate:    "2026-09-30",
		SessionIDs: []uint{s2.ID},
	})
	if err != nil {
		t.Fatalf("second CreateInvoice failed: %v", err)
	}
	if second.InvoiceNumber != "INV-0002" {
		t.Errorf("second invoice number = %s, want INV-0002", second.InvoiceNumber)
	}
}

func TestUninvoicedSessions_ExcludesBilled(t *testing.T) {
	store := openTestStore(t)
	work := workType(t, store)
	billed := logSession(t, store, work.ID, "2026-08-27", 2, 50)
	open := logSession(t, store, work.ID, "2026-08-28", 3, 50)

	if _, err := store.CreateInvoice(models.NewInvoice{
		ClientName: "Acme",
		DueDate:    "2026-09-30",
		SessionIDs: []uint{billed.ID},
	}); err != nil {
		t.Fatalf("CreateInvoice failed: %v", err)
	}

	sessions, err := store.UninvoicedSessions()
	if err != nil {
		t.Fatalf("UninvoicedSessions failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != open.ID {
		t.Errorf("uninvoiced = %v, want only session %d", sessions, open.ID)
	}
}

func TestUpdateInvoiceStatus_MissingInvoice(t *testing.T) {
	store := openTestStore(t)
	if err := store.UpdateInvoiceStatus(42, models.InvoicePaid); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUnlockAchievement_Monotonic(t *testing.T) {
	store := openTestStore(t)
	now := time.Now()

	isNew, err := store.UnlockAchievement("first_step", now)
	if err != nil || !isNew {
		t.Fatalf("first unlock = (%v, %v), want (true, nil)", isNew, err)
	}
	isNew, err = store.UnlockAchievement("first_step", now.Add(time.Hour))
	if err != nil || isNew {
		t.Fatalf("repeat unlock = (%v, %v), want (false, nil)", isNew, err)
	}

	ids, err := store.UnlockedAchievementIDs()
	if err != nil {
		t.Fatalf("UnlockedAchievementIDs failed: %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("unlocked ids = %d, want 1", len(ids))
	}
}

func TestGetLicense_DefaultsToFree(t *testing.T) {
	store := openTestStore(t)

	license, err := store.GetLicense()
	if err != nil {
		t.Fatalf("GetLicense failed: %v", err)
	}
	if license.Tier != models.TierFree {
		t.Errorf("fresh database tier = %s, want Free", license.Tier)
	}

	key := "CD-TEST-KEY"
	if err := store.SaveLicense(models.License{Tier: models.TierPro, LicenseKey: &key}); err != nil {
		t.Fatalf("SaveLicense failed: %v", err)
	}
	license, err = store.GetLicense()
	if err != nil {
		t.Fatalf("GetLicense after save failed: %v", err)
	}
	if license.Tier != models.TierPro {
		t.Errorf("tier = %s, want Pro", license.Tier)
	}
}

func TestCanCreateSessionType_FreeTierLimit(t *testing.T) {
	store := openTestStore(t)

	// The two seeded categories already hit the Free limit of 2
	check, err := store.CanCreateSessionType()
	if err != nil {
		t.Fatalf("CanCreateSessionType failed: %v", err)
	}
	if check.Allowed {
		t.Error("Free tier with 2 categories should be at its limit")
	}

	if err := store.SaveLicense(models.License{Tier: models.TierPro}); err != nil {
		t.Fatalf("SaveLicense failed: %v", err)
	}
	check, err = store.CanCreateSessionType()
	if err != nil {
		t.Fatalf("CanCreateSessionType failed: %v", err)
	}
	if !check.Allowed {
		t.Error("Pro tier should have no category limit")
	}
}

func TestSettingsRoundtrip(t *testing.T) {
	store := openTestStore(t)

	if val, err := store.GetSetting("device_id"); err != nil || val != nil {
		t.Fatalf("missing setting = (%v, %v), want (nil, nil)", val, err)
	}
	if err := store.SetSetting("device_id", "abc-123"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	val, err := store.GetSetting("device_id")
	if err != nil || val == nil || *val != "abc-123" {
		t.Fatalf("GetSetting = (%v, %v), want abc-123", val, err)
	}
}

func TestEventFacts(t *testing.T) {
	store := openTestStore(t)

	if err := store.LogEvent("view_analytics", nil); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}
	if err := store.LogEvent("view_analytics", nil); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}
	label := "30d"
	if err := store.LogEvent("analytics_range", &label); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}

	days, err := store.CountEventDays("view_analytics")
	if err != nil {
		t.Fatalf("CountEventDays failed: %v", err)
	}
	if days != 1 {
		t.Errorf("two events today = %d distinct days, want 1", days)
	}

	distinct, err := store.CountDistinctEventData("analytics_range")
	if err != nil {
		t.Fatalf("CountDistinctEventData failed: %v", err)
	}
	if distinct != 1 {
		t.Errorf("distinct range labels = %d, want 1", distinct)
	}

	same, err := store.EventsSameDay("view_analytics", "view_advisor")
	if err != nil {
		t.Fatalf("EventsSameDay failed: %v", err)
	}
	if same {
		t.Error("advisor never used, EventsSameDay should be false")
	}
	if err := store.LogEvent("view_advisor", nil); err != nil {
		t.Fatalf("LogEvent failed: %v", err)
	}
	same, err = store.EventsSameDay("view_analytics", "view_advisor")
	if err != nil {
		t.Fatalf("EventsSameDay failed: %v", err)
	}
	if !same {
		t.Error("both events logged today, EventsSameDay should be true")
	}
}

func TestHabitStreaks(t *testing.T) {
	store := openTestStore(t)

	habit := models.Habit{Name: "Stretch", TriggerType: models.TriggerDaily, IsActive: true}
	if err := store.CreateHabit(&habit); err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	if _, err := store.LogHabitCompletion(habit.ID, ""); err != nil {
		t.Fatalf("LogHabitCompletion failed: %v", err)
	}
	if _, err := store.LogHabitCompletion(habit.ID, ""); err != nil {
		t.Fatalf("second completion failed: %v", err)
	}

	habits, err := store.ListHabits()
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("habits = %d, want 1", len(habits))
	}
	h := habits[0]
	if h.TotalCompletions != 1 {
		t.Errorf("TotalCompletions = %d, want 1 (two completions on the same day)", h.TotalCompletions)
	}
	if h.CurrentStreak != 1 || h.BestStreak != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", h.CurrentStreak, h.BestStreak)
	}
}
