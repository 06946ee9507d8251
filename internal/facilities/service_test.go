package facilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvasree15/healthpuls/pkg/types"
)

func TestListReturnsFullCatalog(t *testing.T) {
	svc := New()

	all, err := svc.List("", 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "City General Hospital", all[0].Name)
	assert.Equal(t, types.FacilityHospital, all[0].Type)
}

func TestListFiltersByType(t *testing.T) {
	svc := New()

	hospitals, err := svc.List(types.FacilityHospital, 0)
	require.NoError(t, err)
	require.Len(t, hospitals, 2)
	for _, f := range hospitals {
		assert.Equal(t, types.FacilityHospital, f.Type)
	}

	clinics, err := svc.List(types.FacilityClinic, 0)
	require.NoError(t, err)
	assert.Len(t, clinics, 3)
}

func TestListFiltersByMaxDistance(t *testing.T) {
	svc := New()

	near, err := svc.List("", 1.5)
	require.NoError(t, err)
	require.Len(t, near, 3)
	for _, f := range near {
		assert.LessOrEqual(t, f.DistanceKM, 1.5)
	}
}

func TestListCombinesTypeAndDistance(t *testing.T) {
	svc := New()

	nearClinics, err := svc.List(types.FacilityClinic, 1.5)
	require.NoError(t, err)
	require.Len(t, nearClinics, 2)
	for _, f := range nearClinics {
		assert.Equal(t, types.FacilityClinic, f.Type)
		assert.LessOrEqual(t, f.DistanceKM, 1.5)
	}
}

func TestListTightDistanceMatchesNothing(t *testing.T) {
	svc := New()

	none, err := svc.List(types.FacilityHospital, 0.5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListRejectsUnknownType(t *testing.T) {
	svc := New()

	_, err := svc.List(types.FacilityType("Pharmacy"), 0)
	require.Error(t, err)

	pe, ok := err.(*types.PortalError)
	require.True(t, ok)
	assert.Equal(t, types.ErrorTypeValidation, pe.Type)
}
