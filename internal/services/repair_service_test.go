package services

import (
	"context"
	"testing"

	"bmu-system/internal/dto"
	"bmu-system/internal/entities"
	"bmu-system/pkg/constants"
	"bmu-system/pkg/eventbus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repairFixture struct {
	svc           RepairServiceInterface
	repairRepo    *fakeRepairRepo
	equipmentRepo *fakeEquipmentRepo
	userRepo      *fakeUserRepo
	reporterCtx   context.Context
}

func newRepairFixture() *repairFixture {
	f := &repairFixture{
		repairRepo:    newFakeRepairRepo(),
		equipmentRepo: newFakeEquipmentRepo(),
		userRepo:      newFakeUserRepo(),
	}
	f.svc = NewRepairService(
		f.repairRepo,
		f.equipmentRepo,
		f.userRepo,
		fakeTxManager{},
		eventbus.New(zap.NewNop()),
		zap.NewNop(),
	)
	reporter := f.userRepo.add(entities.User{FirstName: "สมศักดิ์", LastName: "ทำงาน"})
	f.reporterCtx = ctxWithUser(int(reporter.ID))
	return f
}

func TestReport_CreatesPendingAndFlagsEquipment(t *testing.T) {
	f := newRepairFixture()
	equipment := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusUsable})

	created, err := f.svc.Report(f.reporterCtx, dto.CreateRepairReportDTO{
		EquipmentID:   equipment.ID,
		ProblemDetail: "เปิดไม่ติด",
	})
	require.NoError(t, err)

	assert.Equal(t, constants.RepairStatusPending, created.RepairStatus)
	assert.Equal(t, "สมศักดิ์ ทำงาน", created.ReporterName)

	updated, err := f.equipmentRepo.FindByID(context.Background(), equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusNeedsRepair, updated.Status)
}

func TestReport_RefusesAlreadyBrokenEquipment(t *testing.T) {
	f := newRepairFixture()

	for _, status := range []string{constants.EquipmentStatusBroken, constants.EquipmentStatusNeedsRepair} {
		equipment := f.equipmentRepo.add(entities.Equipment{Status: status})
		_, err := f.svc.Report(f.reporterCtx, dto.CreateRepairReportDTO{
			EquipmentID:   equipment.ID,
			ProblemDetail: "จอแตก",
		})
		requireConflict(t, err)
	}
}

func TestReport_RefusesSecondOpenReport(t *testing.T) {
	f := newRepairFixture()
	equipment := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusUsable})

	_, err := f.svc.Report(f.reporterCtx, dto.CreateRepairReportDTO{
		EquipmentID:   equipment.ID,
		ProblemDetail: "เปิดไม่ติด",
	})
	require.NoError(t, err)

	// Restore the status by hand; the open report alone must still
	// block a second submission.
	f.equipmentRepo.items[equipment.ID].Status = constants.EquipmentStatusUsable

	_, err = f.svc.Report(f.reporterCtx, dto.CreateRepairReportDTO{
		EquipmentID:   equipment.ID,
		ProblemDetail: "เปิดไม่ติดอีกแล้ว",
	})
	requireConflict(t, err)
}

func TestResolve_RestoresEquipment(t *testing.T) {
	f := newRepairFixture()
	equipment := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusUsable})

	created, err := f.svc.Report(f.reporterCtx, dto.CreateRepairReportDTO{
		EquipmentID:   equipment.ID,
		ProblemDetail: "แบตเสื่อม",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Resolve(context.Background(), created.ID))

	report := f.repairRepo.reports[created.ID]
	assert.Equal(t, constants.RepairStatusRepaired, report.RepairStatus)
	assert.True(t, report.ResolvedDate.Valid)

	restored, err := f.equipmentRepo.FindByID(context.Background(), equipment.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusUsable, restored.Status)
}

func TestResolve_OnlyPendingReports(t *testing.T) {
	f := newRepairFixture()
	equipment := f.equipmentRepo.add(entities.Equipment{Status: constants.EquipmentStatusUsable})

	created, err := f.svc.Report(f.reporterCtx, dto.CreateRepairReportDTO{
		EquipmentID:   equipment.ID,
		ProblemDetail: "สายชาร์จขาด",
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.Resolve(context.Background(), created.ID))

	requireConflict(t, f.svc.Resolve(context.Background(), created.ID))
}
