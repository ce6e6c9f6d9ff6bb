package services

import (
	"context"
	"testing"

	"bmu-system/internal/dto"
	"bmu-system/internal/entities"
	"bmu-system/pkg/constants"
	apperrors "bmu-system/pkg/errors"
	"bmu-system/pkg/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type historyFixture struct {
	svc           HistoryServiceInterface
	equipmentRepo *fakeEquipmentRepo
	historyRepo   *fakeHistoryRepo
	userRepo      *fakeUserRepo
	cacheRepo     *fakeCacheRepo
}

func newHistoryFixture() *historyFixture {
	f := &historyFixture{
		equipmentRepo: newFakeEquipmentRepo(),
		historyRepo:   newFakeHistoryRepo(),
		userRepo:      newFakeUserRepo(),
		cacheRepo:     newFakeCacheRepo(),
	}
	f.svc = NewHistoryService(
		f.historyRepo,
		f.equipmentRepo,
		f.userRepo,
		f.cacheRepo,
		fakeTxManager{},
		eventbus.New(zap.NewNop()),
		zap.NewNop(),
	)
	return f
}

func requireConflict(t *testing.T, err error) {
	t.Helper()
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Code)
}

func TestRequestBorrow_CreatesPendingRecordAndReservesEquipment(t *testing.T) {
	f := newHistoryFixture()
	equipment := f.equipmentRepo.add(entities.Equipment{
		AssetCode: "SOF-001",
		Name:      "Sofa",
		Status:    constants.EquipmentStatusUsable,
	})

	created, err := f.svc.RequestBorrow(context.Background(), equipment.ID, dto.CreateBorrowDTO{
		BorrowerName: "สมศักดิ์ ทำงาน",
		Remark:       "site visit",
	})
	require.NoError(t, err)

	assert.Equal(t, constants.BorrowStatusPendingBorrow, created.Status)
	assert.Equal(t, "สมศักดิ์ ทำงาน", created.BorrowerName)

	updated, err := f.equipmentRepo.FindByID(context.Background(), equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusBorrowed, updated.Status)
}

func TestRequestBorrow_RefusesUnavailableEquipment(t *testing.T) {
	f := newHistoryFixture()

	for _, status := range []string{
		constants.EquipmentStatusBorrowed,
		constants.EquipmentStatusInUse,
		constants.EquipmentStatusBroken,
		constants.EquipmentStatusNeedsRepair,
	} {
		equipment := f.equipmentRepo.add(entities.Equipment{Status: status})
		_, err := f.svc.RequestBorrow(context.Background(), equipment.ID, dto.CreateBorrowDTO{
			BorrowerName: "สมศักดิ์ ทำงาน",
			Remark:       "site visit",
		})
		requireConflict(t, err)
	}
}

func TestRequestBorrow_UnknownEquipment(t *testing.T) {
	f := newHistoryFixture()
	_, err := f.svc.RequestBorrow(context.Background(), 42, dto.CreateBorrowDTO{
		BorrowerName: "สมศักดิ์ ทำงาน",
		Remark:       "site visit",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Code)
}

func TestBorrowLifecycle_ApproveBorrowThenReturn(t *testing.T) {
	f := newHistoryFixture()
	borrower := f.userRepo.add(entities.User{FirstName: "สมศักดิ์", LastName: "ทำงาน", Role: constants.RoleNormal})
	equipment := f.equipmentRepo.add(entities.Equipment{AssetCode: "NB-0001", Status: constants.EquipmentStatusUsable})

	created, err := f.svc.RequestBorrow(context.Background(), equipment.ID, dto.CreateBorrowDTO{
		BorrowerName: "สมศักดิ์ ทำงาน",
		Remark:       "off-site work",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Approve(context.Background(), created.ID))
	rec := f.historyRepo.records[created.ID]
	assert.Equal(t, constants.BorrowStatusBorrowed, rec.Status)

	ctx := ctxWithUser(int(borrower.ID))
	require.NoError(t, f.svc.RequestReturn(ctx, created.ID, dto.ReturnBorrowDTO{ReceivedBy: "สุดา เทคนิค"}))
	assert.Equal(t, constants.BorrowStatusPendingReturn, rec.Status)
	assert.Equal(t, "สุดา เทคนิค", rec.ReceivedBy.String)

	require.NoError(t, f.svc.Approve(context.Background(), created.ID))
	assert.Equal(t, constants.BorrowStatusReturned, rec.Status)

	freed, err := f.equipmentRepo.FindByID(context.Background(), equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusUsable, freed.Status)
}

func TestRequestReturn_OnlyBorrower(t *testing.T) {
	f := newHistoryFixture()
	other := f.userRepo.add(entities.User{FirstName: "วิภา", LastName: "สำนักงาน"})
	equipment := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusUsable})

	created, err := f.svc.RequestBorrow(context.Background(), equipment.ID, dto.CreateBorrowDTO{
		BorrowerName: "สมศักดิ์ ทำงาน",
		Remark:       "meeting room setup",
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.Approve(context.Background(), created.ID))

	err = f.svc.RequestReturn(ctxWithUser(int(other.ID)), created.ID, dto.ReturnBorrowDTO{ReceivedBy: "สุดา เทคนิค"})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)
	assert.Equal(t, constants.BorrowStatusBorrowed, f.historyRepo.records[created.ID].Status)
}

func TestRequestReturn_OnlyFromBorrowed(t *testing.T) {
	f := newHistoryFixture()
	borrower := f.userRepo.add(entities.User{FirstName: "สมศักดิ์", LastName: "ทำงาน"})
	equipment := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusUsable})

	created, err := f.svc.RequestBorrow(context.Background(), equipment.ID, dto.CreateBorrowDTO{
		BorrowerName: "สมศักดิ์ ทำงาน",
		Remark:       "still pending approval",
	})
	require.NoError(t, err)

	// pending_borrow -> pending_return is not a legal move.
	err = f.svc.RequestReturn(ctxWithUser(int(borrower.ID)), created.ID, dto.ReturnBorrowDTO{ReceivedBy: "สุดา เทคนิค"})
	requireConflict(t, err)
}

func TestApprove_RefusesTerminalRecord(t *testing.T) {
	f := newHistoryFixture()
	equipment := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusUsable})

	created, err := f.svc.RequestBorrow(context.Background(), equipment.ID, dto.CreateBorrowDTO{
		BorrowerName: "สมศักดิ์ ทำงาน",
		Remark:       "quick errand",
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.Reject(context.Background(), created.ID, dto.RejectBorrowDTO{Remark: "not available"}))

	requireConflict(t, f.svc.Approve(context.Background(), created.ID))
}

func TestReject_PendingBorrowReleasesEquipment(t *testing.T) {
	f := newHistoryFixture()
	equipment := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusUsable})

	created, err := f.svc.RequestBorrow(context.Background(), equipment.ID, dto.CreateBorrowDTO{
		BorrowerName: "สมศักดิ์ ทำงาน",
		Remark:       "team offsite",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Reject(context.Background(), created.ID, dto.RejectBorrowDTO{Remark: "needed in office"}))

	rec := f.historyRepo.records[created.ID]
	assert.Equal(t, constants.BorrowStatusRejected, rec.Status)
	assert.Equal(t, "needed in office", rec.Remark.String)

	released, err := f.equipmentRepo.FindByID(context.Background(), equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusUsable, released.Status)
}

func TestReject_PendingReturnKeepsEquipmentWithBorrower(t *testing.T) {
	f := newHistoryFixture()
	borrower := f.userRepo.add(entities.User{FirstName: "สมศักดิ์", LastName: "ทำงาน"})
	equipment := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusUsable})

	created, err := f.svc.RequestBorrow(context.Background(), equipment.ID, dto.CreateBorrowDTO{
		BorrowerName: "สมศักดิ์ ทำงาน",
		Remark:       "long project",
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.Approve(context.Background(), created.ID))
	require.NoError(t, f.svc.RequestReturn(ctxWithUser(int(borrower.ID)), created.ID, dto.ReturnBorrowDTO{ReceivedBy: "สุดา เทคนิค"}))

	require.NoError(t, f.svc.Reject(context.Background(), created.ID, dto.RejectBorrowDTO{Remark: "checklist incomplete"}))

	assert.Equal(t, constants.BorrowStatusRejected, f.historyRepo.records[created.ID].Status)

	held, err := f.equipmentRepo.FindByID(context.Background(), equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusBorrowed, held.Status)
}

func TestPending_ServesFromCacheOnSecondCall(t *testing.T) {
	f := newHistoryFixture()
	equipment := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusUsable})

	_, err := f.svc.RequestBorrow(context.Background(), equipment.ID, dto.CreateBorrowDTO{
		BorrowerName: "สมศักดิ์ ทำงาน",
		Remark:       "demo",
	})
	require.NoError(t, err)

	first, err := f.svc.Pending(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A direct repository change must stay invisible until the cache
	// entry is invalidated.
	other := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusUsable})
	_, err = f.svc.RequestBorrow(context.Background(), other.ID, dto.CreateBorrowDTO{
		BorrowerName: "วิภา สำนักงาน",
		Remark:       "demo",
	})
	require.NoError(t, err)

	cached, err := f.svc.Pending(context.Background())
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	require.NoError(t, f.cacheRepo.Del(context.Background(), constants.CacheKeyPendingList))

	fresh, err := f.svc.Pending(context.Background())
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}
