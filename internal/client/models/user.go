// Package models defines the domain types of the EditaisBR client: the
// authenticated user session, notices (editais) and their search filters.
package models

// PersonType distinguishes individual and organization accounts.
type PersonType string

const (
	PersonTypeIndividual   PersonType = "fisica"
	PersonTypeOrganization PersonType = "juridica"
)

// User is the in-process session record: the authenticated identity plus the
// cached profile fields. It is mirrored into the persisted local store on
// every successful session mutation.
type User struct {
	UID       string     `json:"uid"`
	Email     string     `json:"email"`
	Name      string     `json:"nome,omitempty"`
	Surname   string     `json:"sobrenome,omitempty"`
	Type      PersonType `json:"tipo,omitempty"`
	CPF       string     `json:"cpf,omitempty"`
	CNPJ      string     `json:"cnpj,omitempty"`
	Telephone string     `json:"telefone,omitempty"`
}

// LoginCredentials carries the login form fields.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Address is the postal address block shared by both registration variants.
type Address struct {
	Street     string `json:"rua"`
	Number     string `json:"numero"`
	Complement string `json:"complemento,omitempty"`
	District   string `json:"bairro"`
	ZipCode    string `json:"cep"`
	State      string `json:"estado"`
	City       string `json:"cidade"`
}

// RegisterIndividualData carries the individual ("pessoa física")
// registration form fields.
type RegisterIndividualData struct {
	Name            string  `json:"nome"`
	Surname         string  `json:"sobrenome"`
	Telephone       string  `json:"telefone"`
	CPF             string  `json:"cpf"`
	Email           string  `json:"email"`
	Password        string  `json:"senha"`
	ConfirmPassword string  `json:"confirmarSenha"`
	BirthDate       string  `json:"dataNascimento"`
	MaritalStatus   string  `json:"estadoCivil"`
	PublishesNotices bool   `json:"publicaEditais"`
	Address         Address `json:"endereco"`
	PolicyAccepted  bool    `json:"aceitePolitica"`
}

// RegisterOrganizationData extends the individual form with the
// organization ("pessoa jurídica") specific fields.
type RegisterOrganizationData struct {
	RegisterIndividualData
	OrganizationName  string `json:"nomeInstituicao"`
	CNPJ              string `json:"cnpj"`
	StateRegistration string `json:"inscricaoEstadual"`
}

// Profile is the dashboard view of a user, resolved from the remote profile
// document, the persisted local record, or canned defaults, in that order.
type Profile struct {
	Name        string
	Email       string
	CPF         string
	CNPJ        string
	Phone       string
	Address     string
	City        string
	State       string
	ZipCode     string
	Company     string
	Role        string
	MemberSince string
}
