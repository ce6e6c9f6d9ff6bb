package services

import (
	"context"
	"testing"

	"bmu-system/internal/dto"
	"bmu-system/internal/entities"
	"bmu-system/pkg/constants"
	apperrors "bmu-system/pkg/errors"
	"bmu-system/pkg/eventbus"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type equipmentFixture struct {
	svc           EquipmentServiceInterface
	equipmentRepo *fakeEquipmentRepo
	userRepo      *fakeUserRepo
}

func newEquipmentFixture() *equipmentFixture {
	f := &equipmentFixture{
		equipmentRepo: newFakeEquipmentRepo(),
		userRepo:      newFakeUserRepo(),
	}
	f.svc = NewEquipmentService(
		f.equipmentRepo,
		f.userRepo,
		fakeTxManager{},
		eventbus.New(zap.NewNop()),
		zap.NewNop(),
	)
	return f
}

func TestCreateEquipment_DuplicateAssetCode(t *testing.T) {
	f := newEquipmentFixture()
	f.equipmentRepo.add(entities.Equipment{AssetCode: "NB-0001", Status: constants.EquipmentStatusUsable})

	_, err := f.svc.Create(context.Background(), dto.CreateEquipmentDTO{
		Category:  "Notebook",
		AssetCode: "NB-0001",
		Name:      "Lenovo ThinkPad E14",
	})
	requireConflict(t, err)
}

func TestDeleteEquipment_RefusesBorrowed(t *testing.T) {
	f := newEquipmentFixture()
	equipment := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusBorrowed})

	requireConflict(t, f.svc.Delete(context.Background(), equipment.ID))

	_, err := f.equipmentRepo.FindByID(context.Background(), equipment.ID)
	assert.NoError(t, err)
}

func TestSetStatus_ManualStatusesOnly(t *testing.T) {
	f := newEquipmentFixture()
	equipment := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusUsable})

	for _, status := range []string{constants.EquipmentStatusBorrowed, constants.EquipmentStatusInUse, "bogus"} {
		err := f.svc.SetStatus(context.Background(), equipment.ID, status)
		var httpErr *apperrors.HttpError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 400, httpErr.Code)
	}

	require.NoError(t, f.svc.SetStatus(context.Background(), equipment.ID, constants.EquipmentStatusBroken))
	updated, err := f.equipmentRepo.FindByID(context.Background(), equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusBroken, updated.Status)
}

func TestSetStatus_RefusesEquipmentInUse(t *testing.T) {
	f := newEquipmentFixture()

	for _, current := range []string{constants.EquipmentStatusBorrowed, constants.EquipmentStatusInUse} {
		equipment := f.equipmentRepo.add(entities.Equipment{Status: current})
		requireConflict(t, f.svc.SetStatus(context.Background(), equipment.ID, constants.EquipmentStatusBroken))
	}
}

func TestBind_ClaimsUsableEquipment(t *testing.T) {
	f := newEquipmentFixture()
	user := f.userRepo.add(entities.User{FirstName: "สมศักดิ์", LastName: "ทำงาน"})
	f.equipmentRepo.add(entities.Equipment{AssetCode: "NB-0001", Status: constants.EquipmentStatusUsable})

	bound, err := f.svc.Bind(ctxWithUser(int(user.ID)), "NB-0001")
	require.NoError(t, err)

	assert.Equal(t, constants.EquipmentStatusInUse, bound.Status)
	assert.Equal(t, "สมศักดิ์ ทำงาน", bound.AssignedTo.String)
	assert.True(t, bound.AssignedDate.Valid)
	assert.Equal(t, constants.LocationOffice, bound.CurrentLocation.String)
}

func TestBind_RefusesNonUsableEquipment(t *testing.T) {
	f := newEquipmentFixture()
	user := f.userRepo.add(entities.User{FirstName: "สมศักดิ์", LastName: "ทำงาน"})

	for _, status := range []string{
		constants.EquipmentStatusInUse,
		constants.EquipmentStatusBorrowed,
		constants.EquipmentStatusBroken,
	} {
		equipment := f.equipmentRepo.add(entities.Equipment{AssetCode: "EQ-" + status[:2], Status: status})
		_, err := f.svc.Bind(ctxWithUser(int(user.ID)), equipment.AssetCode)
		requireConflict(t, err)
	}
}

func TestSetLocation_OwnerOnly(t *testing.T) {
	f := newEquipmentFixture()
	owner := f.userRepo.add(entities.User{FirstName: "สมศักดิ์", LastName: "ทำงาน"})
	other := f.userRepo.add(entities.User{FirstName: "วิภา", LastName: "สำนักงาน"})
	equipment := f.equipmentRepo.add(entities.Equipment{
		Status:     constants.EquipmentStatusInUse,
		AssignedTo: null.StringFrom("สมศักดิ์ ทำงาน"),
	})

	err := f.svc.SetLocation(ctxWithUser(int(other.ID)), equipment.ID, constants.LocationHome)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)

	require.NoError(t, f.svc.SetLocation(ctxWithUser(int(owner.ID)), equipment.ID, constants.LocationHome))
	updated, err := f.equipmentRepo.FindByID(context.Background(), equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.LocationHome, updated.CurrentLocation.String)
}

func TestSetLocation_RefusesBorrowedEquipment(t *testing.T) {
	f := newEquipmentFixture()
	borrower := f.userRepo.add(entities.User{FirstName: "สมศักดิ์", LastName: "ทำงาน"})
	equipment := f.equipmentRepo.add(entities.Equipment{
		Status:     constants.EquipmentStatusBorrowed,
		AssignedTo: null.StringFrom("สมศักดิ์ ทำงาน"),
	})

	err := f.svc.SetLocation(ctxWithUser(int(borrower.ID)), equipment.ID, constants.LocationHome)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)
}
