package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecognizeRequestor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"check requestor label", "Check Requestor: Jane Kim\nDate: 01/01/2024", "Jane Kim"},
		{"requester spelling", "Check Requester: Dana Lee\n", "Dana Lee"},
		{"bare requestor label", "Requestor: Maria Gomez\n", "Maria Gomez"},
		{"name label stops at email", "Name: Pat Chen Email: pat@example.com", "Pat Chen"},
		{"submitted by", "Submitted by: Alex Roy\n", "Alex Roy"},
		{"same-line date terminator", "Check Requestor: Jane Kim Date: 01/01/2024", "Jane Kim"},
		{"single letter rejected", "Requestor: J\n", ""},
		{"missing", "Amount: $5.00", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recognizeRequestor(tt.in))
		})
	}
}

func TestRecognizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"labeled slash", "Date: 03/14/2024", "03/14/2024"},
		{"labeled dash", "Date: 3-4-24", "3-4-24"},
		{"unanchored four digit year", "submitted 12/25/2023 by Jane", "12/25/2023"},
		{"unanchored two digit year", "signed 1/2/24", "1/2/24"},
		{"labeled written month", "Date: March 4, 2024", "March 4, 2024"},
		{"unanchored written month", "received January 15 2024 thanks", "January 15 2024"},
		{"label wins over earlier bare date", "paid 01/01/2020\nDate: 02/02/2021", "02/02/2021"},
		{"missing", "no dates here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recognizeDate(tt.in))
		})
	}
}

func TestRecognizeAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"amount requested", "Amount Requested: $45.00", "$45.00"},
		{"normalizes to two decimals", "Amount Requested: $1,234.5", "$1234.50"},
		{"bare amount label", "Amount: 12", "$12.00"},
		{"total label", "Total: $99.99", "$99.99"},
		{"unanchored dollar capture", "we spent $ 31.50 on plates", "$31.50"},
		{"comma grouping stripped", "Total: 2,500", "$2500.00"},
		{"missing", "no money talk", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recognizeAmount(tt.in))
		})
	}
}

func TestRecognizeEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"folds case", "Email: John.Doe@EXAMPLE.com", "john.doe@example.com"},
		{"no label needed", "reach me at jane+pta@school.org thanks", "jane+pta@school.org"},
		{"missing", "no at signs", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recognizeEmail(tt.in))
		})
	}
}

func TestRecognizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"parenthesized", "Phone: (555) 123-4567", "(555) 123-4567"},
		{"dashed", "call 555-123-4567 anytime", "555-123-4567"},
		{"dotted", "555.123.4567", "555.123.4567"},
		{"bare ten digits", "Phone: 5551234567", "5551234567"},
		{"bare run at line start", "details\n5551234567\nmore", "5551234567"},
		{"inside longer run is ignored", "Tracking: 123456789012", ""},
		{"eleven digits ignored", "ref 15551234567 end", ""},
		{"missing", "no numbers", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recognizePhone(tt.in))
		})
	}
}

func TestRecognizeChildName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"childs name", "Child's Name: Sam Kim\n", "Sam Kim"},
		{"child name no apostrophe", "Child Name: Lee Park\n", "Lee Park"},
		{"student name", "Student's Name: Ana Silva\n", "Ana Silva"},
		{"stops before teacher", "Child's Name: Sam Kim Teacher: Mrs. Ray", "Sam Kim"},
		{"bare child label", "Child: Robin Wu\n", "Robin Wu"},
		{"missing", "Requestor: Jane Kim", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recognizeChildName(tt.in))
		})
	}
}

func TestRecognizeEvent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"event label", "Event: Book Fair\n", "Book Fair"},
		{"for label requires event word", "For: Spring Party\n", "Spring Party"},
		{"purpose label", "Purpose: Classroom supplies\n", "Classroom supplies"},
		{"known phrase anywhere", "receipts from the Halloween Party attached", "Halloween Party"},
		{"valentines variants", "Valentine's Day Party supplies", "Valentine's Day Party"},
		{"field day", "decorations for Field Day", "Field Day"},
		{"generic phrase preferred over custom name", "supplies for the Winter Party and the Robotics Showcase", "Winter Party"},
		{"missing", "Amount: $5.00", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recognizeEvent(tt.in))
		})
	}
}

func TestRecognizePayableTo(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full label", "Make Check Payable To: Jane Kim\n", "Jane Kim"},
		{"payable to", "Payable To: Maria Gomez\n", "Maria Gomez"},
		{"pay to", "Pay To: Alex Roy\n", "Alex Roy"},
		{"missing", "Requestor: Jane", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recognizePayableTo(tt.in))
		})
	}
}
