package contextkeys

type contextKey string

// ProfileKey porte le profil de l'appelant, déposé par le middleware
// d'authentification et lu via utils.GetProfileFromCtx.
const ProfileKey contextKey = "Profile"
