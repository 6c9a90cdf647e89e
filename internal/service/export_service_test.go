package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcrm/crm-api/internal/domain"
)

func TestExportCompaniesCSV(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.companies.Create(ctx, domain.CreateCompanyRequest{
		Name:            "한국바이오",
		Address:         "서울시 강남구",
		MainPhoneNumber: "02-1234-5678",
	})
	require.NoError(t, err)

	export, err := env.export.Render(ctx, "companies")
	require.NoError(t, err)
	assert.Equal(t, "companies.csv", export.Filename)

	// UTF-8 BOM prefix.
	require.True(t, bytes.HasPrefix(export.Content, []byte{0xEF, 0xBB, 0xBF}))

	records, err := csv.NewReader(bytes.NewReader(export.Content[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"ID", "회사명", "주소", "대표번호", "등록일"}, records[0])
	assert.Equal(t, "한국바이오", records[1][1])
	assert.Equal(t, "02-1234-5678", records[1][3])
}

func TestExportTasksResolvesCompanyName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, err := env.companies.Create(ctx, domain.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)
	_, err = env.tasks.Create(ctx, domain.CreateTaskRequest{
		CompanyID: company.ID,
		Name:      "보고서 작성",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
		Status:    domain.TaskStatusInProgress,
	})
	require.NoError(t, err)

	export, err := env.export.Render(ctx, "tasks")
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(export.Content[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"ID", "회사명", "태스크명", "시작일", "마감일", "상태", "담당자"}, records[0])
	assert.Equal(t, "Acme", records[1][1])
	assert.Equal(t, "In Progress", records[1][5])
}

func TestExportUnknownEntity(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.export.Render(context.Background(), "widgets")
	assert.ErrorIs(t, err, ErrUnknownExportEntity)
}
