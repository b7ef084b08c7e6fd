package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatient_StatusChecks(t *testing.T) {
	admitted := Patient{Status: StatusAdmitted}
	discharged := Patient{Status: StatusDischarged}

	assert.True(t, admitted.IsAdmitted())
	assert.False(t, admitted.IsDischarged())

	assert.False(t, discharged.IsAdmitted())
	assert.True(t, discharged.IsDischarged())
}

func TestPatient_InRoom(t *testing.T) {
	roomID := int64(5)

	inRoom := Patient{Status: StatusAdmitted, RoomID: &roomID}
	assert.True(t, inRoom.InRoom(5))
	assert.False(t, inRoom.InRoom(6))

	// Без палаты пациент не находится ни в одной палате
	unassigned := Patient{Status: StatusDischarged}
	assert.False(t, unassigned.InRoom(5))
}

func TestHospitalScope_Covers(t *testing.T) {
	scope := HospitalScope{HospitalID: 10, ReceptionistID: 1, Role: RoleReceptionist}

	assert.True(t, scope.Covers(10))
	assert.False(t, scope.Covers(20))
}
