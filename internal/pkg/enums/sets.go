package enums

// Display labels are the Portuguese copy shown by both frontends. Codes are
// the FHIR value-set codes written to the wire.

var Gender = Enum{
	{ID: "male", Name: "Masculino"},
	{ID: "female", Name: "Feminino"},
	{ID: "other", Name: "Outro"},
	{ID: "unknown", Name: "Desconhecido"},
}

var SlotStatus = Enum{
	{ID: "free", Name: "Livre"},
	{ID: "busy", Name: "Ocupado"},
	{ID: "busy-unavailable", Name: "Indisponível"},
	{ID: "busy-tentative", Name: "Provisório"},
	{ID: "entered-in-error", Name: "Registado com erro"},
}

var AppointmentStatus = Enum{
	{ID: "proposed", Name: "Proposta"},
	{ID: "pending", Name: "Pendente"},
	{ID: "booked", Name: "Marcada"},
	{ID: "arrived", Name: "Chegou"},
	{ID: "fulfilled", Name: "Realizada"},
	{ID: "cancelled", Name: "Cancelada"},
	{ID: "noshow", Name: "Faltou"},
	{ID: "entered-in-error", Name: "Registada com erro"},
}

var Specialty = Enum{
	{ID: "001", Name: "Medicina Geral e Familiar"},
	{ID: "002", Name: "Cardiologia"},
	{ID: "003", Name: "Dermatologia"},
	{ID: "004", Name: "Pediatria"},
	{ID: "005", Name: "Psiquiatria"},
	{ID: "006", Name: "Oftalmologia"},
}

var ServiceCategory = Enum{
	{ID: "8", Name: "Aconselhamento"},
	{ID: "17", Name: "Clínica Geral"},
	{ID: "27", Name: "Especialidade Médica"},
	{ID: "34", Name: "Saúde Mental"},
}

var ServiceType = Enum{
	{ID: "124", Name: "Consulta Geral"},
	{ID: "165", Name: "Psicologia"},
	{ID: "175", Name: "Telemedicina"},
	{ID: "57", Name: "Imunização"},
}

var OrganizationType = Enum{
	{ID: "prov", Name: "Prestador de Cuidados de Saúde"},
	{ID: "dept", Name: "Departamento Hospitalar"},
	{ID: "team", Name: "Equipa Organizacional"},
	{ID: "ins", Name: "Companhia de Seguros"},
	{ID: "edu", Name: "Instituição de Ensino"},
	{ID: "other", Name: "Outra"},
}

var LocationPhysicalType = Enum{
	{ID: "si", Name: "Local"},
	{ID: "bu", Name: "Edifício"},
	{ID: "wi", Name: "Ala"},
	{ID: "co", Name: "Corredor"},
	{ID: "ro", Name: "Sala"},
	{ID: "ve", Name: "Veículo"},
	{ID: "area", Name: "Área"},
}

var DaysOfWeek = Enum{
	{ID: "mon", Name: "Segunda-feira"},
	{ID: "tue", Name: "Terça-feira"},
	{ID: "wed", Name: "Quarta-feira"},
	{ID: "thu", Name: "Quinta-feira"},
	{ID: "fri", Name: "Sexta-feira"},
	{ID: "sat", Name: "Sábado"},
	{ID: "sun", Name: "Domingo"},
}

var UserRole = Enum{
	{ID: "Admin", Name: "Administrador"},
	{ID: "Practitioner", Name: "Profissional de Saúde"},
	{ID: "Patient", Name: "Utente"},
}
