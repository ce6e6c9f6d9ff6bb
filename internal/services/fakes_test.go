package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bmu-system/internal/dto"
	"bmu-system/internal/entities"
	"bmu-system/pkg/constants"
	"bmu-system/pkg/contextkeys"
	apperrors "bmu-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
)

// In-memory stand-ins for the repository layer. The tx argument is
// ignored; the fake tx manager simply runs the callback.

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

func ctxWithUser(id int) context.Context {
	return context.WithValue(context.Background(), contextkeys.UserIDKey, id)
}

// --- equipment ---

type fakeEquipmentRepo struct {
	items  map[uint64]*entities.Equipment
	nextID uint64
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: make(map[uint64]*entities.Equipment), nextID: 1}
}

func (r *fakeEquipmentRepo) add(e entities.Equipment) *entities.Equipment {
	e.ID = r.nextID
	r.nextID++
	r.items[e.ID] = &e
	return &e
}

func (r *fakeEquipmentRepo) List(ctx context.Context) ([]entities.Equipment, error) {
	out := make([]entities.Equipment, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEquipmentRepo) FindByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEquipmentRepo) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeEquipmentRepo) FindByAssetCode(ctx context.Context, assetCode string) (*entities.Equipment, error) {
	for _, e := range r.items {
		if e.AssetCode == assetCode {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipmentRepo) Create(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	return r.add(entities.Equipment{
		Category:  payload.Category,
		AssetCode: payload.AssetCode,
		Name:      payload.Name,
		Status:    constants.EquipmentStatusUsable,
	}), nil
}

func (r *fakeEquipmentRepo) Delete(ctx context.Context, id uint64) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeEquipmentRepo) SetStatus(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	e, ok := r.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.Status = status
	return nil
}

func (r *fakeEquipmentRepo) SetLocation(ctx context.Context, id uint64, location string) error {
	e, ok := r.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.CurrentLocation = null.StringFrom(location)
	return nil
}

func (r *fakeEquipmentRepo) Bind(ctx context.Context, tx pgx.Tx, id uint64, assignedTo string) error {
	e, ok := r.items[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.Status = constants.EquipmentStatusInUse
	e.AssignedTo = null.StringFrom(assignedTo)
	e.AssignedDate = null.TimeFrom(time.Now())
	e.CurrentLocation = null.StringFrom(constants.LocationOffice)
	return nil
}

func (r *fakeEquipmentRepo) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, e := range r.items {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out, nil
}

// --- history ---

type fakeHistoryRepo struct {
	records map[uint64]*entities.BorrowRecord
	nextID  uint64
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{records: make(map[uint64]*entities.BorrowRecord), nextID: 1}
}

func (r *fakeHistoryRepo) items(filter func(*entities.BorrowRecord) bool) []entities.HistoryItem {
	var out []entities.HistoryItem
	for _, rec := range r.records {
		if filter(rec) {
			out = append(out, entities.HistoryItem{BorrowRecord: *rec})
		}
	}
	return out
}

func (r *fakeHistoryRepo) Active(ctx context.Context) ([]entities.HistoryItem, error) {
	return r.items(func(rec *entities.BorrowRecord) bool {
		return !constants.IsFinalBorrowStatus(rec.Status)
	}), nil
}

func (r *fakeHistoryRepo) Pending(ctx context.Context) ([]entities.HistoryItem, error) {
	return r.items(func(rec *entities.BorrowRecord) bool {
		return rec.Status == constants.BorrowStatusPendingBorrow ||
			rec.Status == constants.BorrowStatusPendingReturn
	}), nil
}

func (r *fakeHistoryRepo) PendingCount(ctx context.Context) (int, error) {
	pending, _ := r.Pending(ctx)
	return len(pending), nil
}

func (r *fakeHistoryRepo) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.BorrowRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeHistoryRepo) Create(ctx context.Context, tx pgx.Tx, record entities.BorrowRecord) (*entities.BorrowRecord, error) {
	record.ID = r.nextID
	r.nextID++
	r.records[record.ID] = &record
	copied := record
	return &copied, nil
}

func (r *fakeHistoryRepo) SetStatus(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	rec, ok := r.records[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	rec.Status = status
	return nil
}

func (r *fakeHistoryRepo) SetReturnRequested(ctx context.Context, tx pgx.Tx, id uint64, receivedBy string) error {
	rec, ok := r.records[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	rec.Status = constants.BorrowStatusPendingReturn
	rec.ReceivedBy = null.StringFrom(receivedBy)
	rec.ReturnDate = null.TimeFrom(time.Now())
	return nil
}

func (r *fakeHistoryRepo) SetRejected(ctx context.Context, tx pgx.Tx, id uint64, remark string) error {
	rec, ok := r.records[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	rec.Status = constants.BorrowStatusRejected
	rec.Remark = null.StringFrom(remark)
	return nil
}

func (r *fakeHistoryRepo) CountBorrowsSince(ctx context.Context, since time.Time) (int, error) {
	n := 0
	for _, rec := range r.records {
		if rec.BorrowDate.After(since) {
			n++
		}
	}
	return n, nil
}

// --- repair ---

type fakeRepairRepo struct {
	reports map[uint64]*entities.RepairReport
	nextID  uint64
}

func newFakeRepairRepo() *fakeRepairRepo {
	return &fakeRepairRepo{reports: make(map[uint64]*entities.RepairReport), nextID: 1}
}

func (r *fakeRepairRepo) List(ctx context.Context) ([]entities.RepairItem, error) {
	var out []entities.RepairItem
	for _, rep := range r.reports {
		out = append(out, entities.RepairItem{RepairReport: *rep})
	}
	return out, nil
}

func (r *fakeRepairRepo) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.RepairReport, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *rep
	return &copied, nil
}

func (r *fakeRepairRepo) HasOpenReport(ctx context.Context, tx pgx.Tx, equipmentID uint64) (bool, error) {
	for _, rep := range r.reports {
		if rep.EquipmentID == equipmentID && rep.RepairStatus == constants.RepairStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepairRepo) Create(ctx context.Context, tx pgx.Tx, report entities.RepairReport) (*entities.RepairReport, error) {
	report.ID = r.nextID
	r.nextID++
	r.reports[report.ID] = &report
	copied := report
	return &copied, nil
}

func (r *fakeRepairRepo) Resolve(ctx context.Context, tx pgx.Tx, id uint64, resolvedAt time.Time) error {
	rep, ok := r.reports[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	rep.RepairStatus = constants.RepairStatusRepaired
	rep.ResolvedDate = null.TimeFrom(resolvedAt)
	return nil
}

// --- users ---

type fakeUserRepo struct {
	users  map[uint64]*entities.User
	nextID uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*entities.User), nextID: 1}
}

func (r *fakeUserRepo) add(u entities.User) *entities.User {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = &u
	return &u
}

func (r *fakeUserRepo) List(ctx context.Context) ([]entities.User, error) {
	out := make([]entities.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, user entities.User) (*entities.User, error) {
	return r.add(user), nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uint64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// --- cache ---

type fakeCacheRepo struct {
	data map[string]string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{data: make(map[string]string)}
}

func (r *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	switch v := value.(type) {
	case []byte:
		r.data[key] = string(v)
	case string:
		r.data[key] = v
	default:
		r.data[key] = fmt.Sprint(v)
	}
	return nil
}

func (r *fakeCacheRepo) Get(ctx context.Context, key string) (string, error) {
	v, ok := r.data[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return v, nil
}

func (r *fakeCacheRepo) Del(ctx context.Context, key ...string) error {
	for _, k := range key {
		delete(r.data, k)
	}
	return nil
}
