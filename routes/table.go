package routes

import "github.com/abimaelfv/titulacion-cli/roles"

// Default builds the route table of the thesis approval client. Every
// workflow screen of a role lives under that role's landing route; jury
// screens additionally admit anyone holding the jury flag, which the guard
// handles on its own.
func Default() *Table {
	student := []roles.Role{roles.Estudiante}
	advisor := []roles.Role{roles.Asesor}
	jury := []roles.Role{roles.Jurado}
	review := []roles.Role{roles.Vri, roles.Turnitin}

	t, err := NewTable(
		Route{Path: "/", Name: Login, Title: "Login"},
		Route{Path: "/register", Name: Register, Title: "Register"},
		Route{Path: "/perfil", Name: Profile, Title: "Perfil"},

		Route{Path: "/estudiante", Name: "estudiante", Title: "Estudiante", RequiredRoles: student},
		Route{Path: "/estudiante/designacion-asesor", Name: "designacion-asesor", Title: "Designación de Asesor", RequiredRoles: student},
		Route{Path: "/estudiante/conformidad-asesor", Name: "conformidad-asesor", Title: "Conformidad de Asesor", RequiredRoles: student},
		Route{Path: "/estudiante/designacion-jurado", Name: "designacion-jurado", Title: "Designación de Jurado", RequiredRoles: student},
		Route{Path: "/estudiante/conformidad-jurado", Name: "conformidad-jurado", Title: "Conformidad de Jurado", RequiredRoles: student},
		Route{Path: "/estudiante/aprobacion-proyecto", Name: "aprobacion-proyecto", Title: "Aprobación de Proyecto", RequiredRoles: student},
		Route{Path: "/estudiante/conformidad-informe", Name: "conformidad-informe", Title: "Conformidad de Informe Final", RequiredRoles: student},
		Route{Path: "/estudiante/sustentacion", Name: "sustentacion", Title: "Programación de Sustentación", RequiredRoles: student},

		Route{Path: "/asesor", Name: "asesor", Title: "Asesor", RequiredRoles: advisor},
		Route{Path: "/asesor/solicitud-asesoria", Name: "solicitud-asesoria", Title: "Solicitud de Asesoría", RequiredRoles: advisor},
		Route{Path: "/asesor/proyecto-tesis", Name: "proyecto-tesis", Title: "Proyecto de Tesis", RequiredRoles: advisor},
		Route{Path: "/asesor/informe-final", Name: "informe-final", Title: "Informe Final", RequiredRoles: advisor},

		Route{Path: "/jurado", Name: "jurado", Title: "Jurado", RequiredRoles: jury},
		Route{Path: "/jurado/solicitud-jurado", Name: "solicitud-jurado", Title: "Solicitud de Jurado", RequiredRoles: jury},
		Route{Path: "/jurado/solicitud-jurado-presidente", Name: "jurado-presidente", Title: "Jurado Presidente", RequiredRoles: jury},

		Route{Path: "/paisi", Name: "paisi", Title: "Comité PAISI", RequiredRoles: []roles.Role{roles.Paisi}},
		Route{Path: "/facultad", Name: "facultad", Title: "Facultad", RequiredRoles: []roles.Role{roles.Facultad}},
		Route{Path: "/vri-turnitin", Name: "vri-turnitin", Title: "VRI / Turnitin", RequiredRoles: review},
		Route{Path: "/admin", Name: "admin", Title: "Administración", RequiredRoles: []roles.Role{roles.Admin}},
	)
	if err != nil {
		panic("routes: invalid default table: " + err.Error())
	}
	return t
}
