package review

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pta-tools/reimb-parser/internal/common"
	"github.com/pta-tools/reimb-parser/internal/extract"
)

func sampleRecord() extract.FormRecord {
	return extract.FormRecord{
		Requestor: "Sarah Mitchell",
		Date:      "03-15-2024",
		Amount:    "$127.50",
		Email:     "smitchell@gmail.com",
		RawText:   "Check Requestor: Sarah Mitchell\nDate: 03-15-2024",
	}
}

func TestFormSetCaseInsensitive(t *testing.T) {
	f := NewForm(sampleRecord())

	require.True(t, f.Set("requestor", "Jane Doe"))
	assert.Equal(t, "Jane Doe", f.Get("Requestor"))

	require.True(t, f.Set("TEACHER/GRADE", "Mrs. Chen / 3rd"))
	assert.Equal(t, "Mrs. Chen / 3rd", f.Get("Teacher/Grade"))

	assert.False(t, f.Set("Budget Line", "x"))
}

func TestFormLabelsOrder(t *testing.T) {
	f := NewForm(sampleRecord())
	assert.Equal(t, []string{
		"Requestor", "Date", "Amount", "Email", "Phone", "Child",
		"Teacher/Grade", "Type", "Event", "Payable To", "Delivery",
	}, f.Labels())
}

func TestReviewAndEditAccept(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("ok\n"), &out)
	f := NewForm(sampleRecord())

	require.NoError(t, s.ReviewAndEdit(f))
	assert.Contains(t, out.String(), "Sarah Mitchell")
	assert.Contains(t, out.String(), "(empty)")
}

func TestReviewAndEditEditThenAccept(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("amount\n$130.00\nok\n")
	s := NewSession(in, &out)
	f := NewForm(sampleRecord())

	require.NoError(t, s.ReviewAndEdit(f))
	assert.Equal(t, "$130.00", f.Get("Amount"))
	assert.Contains(t, out.String(), `Updated "amount" to: $130.00`)
}

func TestReviewAndEditQuit(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("quit\n"), &out)
	err := s.ReviewAndEdit(NewForm(sampleRecord()))
	assert.ErrorIs(t, err, common.ErrUserCancelled)
}

func TestReviewAndEditEOFCancels(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader(""), &out)
	err := s.ReviewAndEdit(NewForm(sampleRecord()))
	assert.ErrorIs(t, err, common.ErrUserCancelled)
}

func TestReviewAndEditRawDump(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("raw\nok\n"), &out)
	require.NoError(t, s.ReviewAndEdit(NewForm(sampleRecord())))
	assert.Contains(t, out.String(), "=== Raw OCR Text ===")
	assert.Contains(t, out.String(), "Check Requestor: Sarah Mitchell")
}

func TestEditFieldUnknownListsFields(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader(""), &out)
	f := NewForm(sampleRecord())

	s.EditField(f, "Budget Line")
	assert.Contains(t, out.String(), `Field "Budget Line" not found`)
	assert.Contains(t, out.String(), "- Payable To")
}

func TestEditFieldKeepCurrent(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("\n"), &out)
	f := NewForm(sampleRecord())

	s.EditField(f, "Amount")
	assert.Equal(t, "$127.50", f.Get("Amount"))
	assert.Contains(t, out.String(), "Kept existing value.")
}

func TestSelectFromListByNumber(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("2\n"), &out)
	got, err := s.SelectFromList([]string{"Check", "Debit", "Amazon"}, "Payment type", true)
	require.NoError(t, err)
	assert.Equal(t, "Debit", got)
}

func TestSelectFromListByName(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("amazon\n"), &out)
	got, err := s.SelectFromList([]string{"Check", "Debit", "Amazon"}, "Payment type", true)
	require.NoError(t, err)
	assert.Equal(t, "Amazon", got)
}

func TestSelectFromListCustomValue(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("4\nVenmo\n"), &out)
	got, err := s.SelectFromList([]string{"Check", "Debit", "Amazon"}, "Payment type", true)
	require.NoError(t, err)
	assert.Equal(t, "Venmo", got)
}

func TestSelectFromListTypedCustomConfirm(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("Zelle\ny\n"), &out)
	got, err := s.SelectFromList([]string{"Check", "Debit"}, "Payment type", true)
	require.NoError(t, err)
	assert.Equal(t, "Zelle", got)
}

func TestSelectFromListRejectsOutOfRange(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("9\n1\n"), &out)
	got, err := s.SelectFromList([]string{"Check", "Debit"}, "Payment type", false)
	require.NoError(t, err)
	assert.Equal(t, "Check", got)
	assert.Contains(t, out.String(), "between 1 and 2")
}

func TestConfirmDefaults(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("\n"), &out)
	assert.True(t, s.Confirm("Proceed?", true))

	s = NewSession(strings.NewReader("\n"), &out)
	assert.False(t, s.Confirm("Proceed?", false))

	s = NewSession(strings.NewReader("yes\n"), &out)
	assert.True(t, s.Confirm("Proceed?", false))

	s = NewSession(strings.NewReader("n\n"), &out)
	assert.False(t, s.Confirm("Proceed?", true))
}
