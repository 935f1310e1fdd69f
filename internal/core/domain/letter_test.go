package domain

import "testing"

func validIdentity() UserIdentity {
	return UserIdentity{
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie.dupont@example.org",
		Address:   "12 rue des Lilas",
		City:      "Lyon",
		ZipCode:   "69003",
		CAFNumber: "1234567",
	}
}

func TestUserIdentityValidate(t *testing.T) {
	if bad := validIdentity().Validate(); len(bad) != 0 {
		t.Fatalf("valid identity rejected: %v", bad)
	}

	cases := []struct {
		name   string
		mutate func(*UserIdentity)
		want   string
	}{
		{"missing first name", func(u *UserIdentity) { u.FirstName = "  " }, "firstName"},
		{"missing last name", func(u *UserIdentity) { u.LastName = "" }, "lastName"},
		{"missing address", func(u *UserIdentity) { u.Address = "" }, "address"},
		{"missing city", func(u *UserIdentity) { u.City = "" }, "city"},
		{"short zip", func(u *UserIdentity) { u.ZipCode = "6900" }, "zipCode"},
		{"alpha zip", func(u *UserIdentity) { u.ZipCode = "6900a" }, "zipCode"},
		{"malformed email", func(u *UserIdentity) { u.Email = "marie@" }, "email"},
	}
	for _, tc := range cases {
		u := validIdentity()
		tc.mutate(&u)
		bad := u.Validate()
		if len(bad) != 1 || bad[0] != tc.want {
			t.Errorf("%s: Validate() = %v, want [%s]", tc.name, bad, tc.want)
		}
	}
}

func TestUserIdentityEmailIsOptional(t *testing.T) {
	u := validIdentity()
	u.Email = ""
	if bad := u.Validate(); len(bad) != 0 {
		t.Errorf("empty email must be accepted, got %v", bad)
	}
}

func TestUserIdentityFullName(t *testing.T) {
	u := UserIdentity{FirstName: "Marie", LastName: "Dupont"}
	if got := u.FullName(); got != "Marie Dupont" {
		t.Errorf("FullName() = %q", got)
	}
	u = UserIdentity{LastName: "Dupont"}
	if got := u.FullName(); got != "Dupont" {
		t.Errorf("FullName() with empty first name = %q", got)
	}
}

func TestUserIdentityOrganismID(t *testing.T) {
	u := UserIdentity{
		CAFNumber:        " 1234567 ",
		CPAMNumber:       "1 85 03 69 123 456",
		PoleEmploiNumber: "9876543A",
	}
	if got := u.OrganismID(OrganismCAF); got != "1234567" {
		t.Errorf("OrganismID(CAF) = %q", got)
	}
	if got := u.OrganismID(OrganismCPAM); got != "1 85 03 69 123 456" {
		t.Errorf("OrganismID(CPAM) = %q", got)
	}
	if got := u.OrganismID(OrganismPoleEmploi); got != "9876543A" {
		t.Errorf("OrganismID(POLE_EMPLOI) = %q", got)
	}
	if got := u.OrganismID("UNKNOWN"); got != "" {
		t.Errorf("OrganismID(unknown) = %q, want empty", got)
	}
}

func TestDownloadFilename(t *testing.T) {
	if got := DownloadFilename(CaseCAFTropPercu); got != "courrier-caf_trop_percu.pdf" {
		t.Errorf("DownloadFilename = %q", got)
	}
}
