package constants

// Rôles des profils. Le rôle est attribué à l'inscription (user) et
// n'est élevé que par action administrative (seeder ou DBA).
const (
	RoleUser     = "user"
	RoleITMember = "it_member"
	RoleAdmin    = "admin"
)

// Cycle de vie d'une demande : ouvert -> en_cours -> termine, sans retour.
const (
	StatusOuvert  = "ouvert"
	StatusEnCours = "en_cours"
	StatusTermine = "termine"
)

const (
	TypeIncident = "incident"
	TypeOrder    = "order"
)

const (
	PriorityBasse   = "basse"
	PriorityMoyenne = "moyenne"
	PriorityUrgente = "urgente"
)

// Filtres de vue pour le listing côté IT/admin.
const (
	FilterAll        = "all"
	FilterUnassigned = "unassigned"
	FilterAssigned   = "assigned"
)

// Services internes du Centre Diagnostic.
var Services = []string{
	"IT",
	"RH",
	"Infirmerie",
	"Médecin",
	"Accueil et facturation",
	"Direction",
	"Laboratoire",
	"Comptabilité",
	"Cotation",
	"Stock",
	"Trésorerie et caisse",
}

// Listes de suggestions pour le champ catégorie. Purement indicatives :
// le serveur ne contraint pas la catégorie.
var IncidentCategories = []string{
	"Problème d'imprimante",
	"Demande liée à Santymed",
	"Problème de réseau",
	"Demande liée à Q-Gabon",
	"Problème de fiches de paillasses",
	"Problème au niveau des automates",
	"Problème Pack Office",
	"Problème Call Center",
	"Demande de maintenance d'ordinateur",
	"Problème lié au téléphone de service",
	"Demande de création de compte Gmail",
	"Autre demande",
}

var OrderCategories = []string{
	"Commander un ordinateur",
	"Commander un clavier",
	"Commander une souris",
	"Commander un cable USB pour imprimante",
	"Commander une imprimante",
	"Autre commande",
}

func IsITOrAdmin(role string) bool {
	return role == RoleITMember || role == RoleAdmin
}

func IsValidService(service string) bool {
	for _, s := range Services {
		if s == service {
			return true
		}
	}
	return false
}
