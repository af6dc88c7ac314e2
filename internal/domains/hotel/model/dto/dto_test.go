package dto_test

import (
	"testing"
	"time"

	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomRequest_ToModel(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.CreateRoomRequest
		wantCategory model.Category
		wantErr      bool
	}{
		{
			name:         "single without bed type",
			req:          dto.CreateRoomRequest{Number: 101, Category: "single", Price: 150},
			wantCategory: model.Single{},
		},
		{
			name:         "single ignores bed type",
			req:          dto.CreateRoomRequest{Number: 101, Category: "single", BedType: "double", Price: 150},
			wantCategory: model.Single{},
		},
		{
			name:         "double with double bed",
			req:          dto.CreateRoomRequest{Number: 201, Category: "double", BedType: "double", Price: 220},
			wantCategory: model.Double{Bed: model.DoubleBed},
		},
		{
			name:         "triple with single beds",
			req:          dto.CreateRoomRequest{Number: 301, Category: "triple", BedType: "single", Price: 280},
			wantCategory: model.Triple{Bed: model.SingleBed},
		},
		{
			name:    "double without bed type",
			req:     dto.CreateRoomRequest{Number: 201, Category: "double", Price: 220},
			wantErr: true,
		},
		{
			name:    "unknown bed type",
			req:     dto.CreateRoomRequest{Number: 201, Category: "double", BedType: "king", Price: 220},
			wantErr: true,
		},
		{
			name:    "unknown category",
			req:     dto.CreateRoomRequest{Number: 401, Category: "suite", Price: 500},
			wantErr: true,
		},
		{
			name:    "zero price",
			req:     dto.CreateRoomRequest{Number: 101, Category: "single", Price: 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, err := tt.req.ToModel("maria")

			if tt.wantErr {
				assert.True(t, failure.Is(err, failure.CodeValidation), "expected validation failure, got %v", err)
				assert.Nil(t, room)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.Number, room.Number)
			assert.Equal(t, tt.wantCategory, room.Category)
			assert.Equal(t, tt.req.Price, room.Price)
			assert.Equal(t, model.StatusAvailable, room.Status)
			assert.Equal(t, "maria", room.CreatedBy)
		})
	}
}

func TestCreateGuestRequest_ToModel(t *testing.T) {
	req := dto.CreateGuestRequest{
		Name:       "  Ana   Maria ",
		NationalID: "12345678901",
		Contact:    "11987654321",
		BirthDate:  "15/08/1990",
	}

	guest, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "ana maria", guest.Name)
	assert.Equal(t, "12345678901", guest.NationalID)
	assert.Equal(t, "11987654321", guest.Contact)
	assert.Equal(t, time.Date(1990, time.August, 15, 0, 0, 0, 0, timezone.GetLocation()), guest.BirthDate)

	req.NationalID = "123"
	_, err = req.ToModel()
	assert.True(t, failure.Is(err, failure.CodeValidation))
}

func TestPeriodRequest_Parse(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.PeriodRequest
		wantErr bool
	}{
		{
			name: "valid period",
			req:  dto.PeriodRequest{StartDate: "01/03/2024", EndDate: "05/03/2024"},
		},
		{
			name: "single day",
			req:  dto.PeriodRequest{StartDate: "01/03/2024", EndDate: "01/03/2024"},
		},
		{
			name:    "end before start",
			req:     dto.PeriodRequest{StartDate: "05/03/2024", EndDate: "01/03/2024"},
			wantErr: true,
		},
		{
			name:    "wrong layout",
			req:     dto.PeriodRequest{StartDate: "2024-03-01", EndDate: "05/03/2024"},
			wantErr: true,
		},
		{
			name:    "missing end",
			req:     dto.PeriodRequest{StartDate: "01/03/2024"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := tt.req.Parse()

			if tt.wantErr {
				assert.True(t, failure.Is(err, failure.CodeValidation), "expected validation failure, got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.StartDate, timezone.FormatDate(start))
			assert.Equal(t, tt.req.EndDate, timezone.FormatDate(end))
		})
	}
}
