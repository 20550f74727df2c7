package playstore

// Category types.
const (
	CategoryTypeGame        = "GAME"
	CategoryTypeApplication = "APPLICATION"
)

// The store's own category listing is unreliable, so the taxonomy is fixed here.
var categories = []Category{
	{ID: "GAME_ACTION", Name: "Ação", Type: CategoryTypeGame, NamePtBr: "Ação"},
	{ID: "GAME_ADVENTURE", Name: "Adventure", Type: CategoryTypeGame, NamePtBr: "Aventura"},
	{ID: "GAME_ARCADE", Name: "Arcade", Type: CategoryTypeGame, NamePtBr: "Arcade"},
	{ID: "GAME_BOARD", Name: "Board", Type: CategoryTypeGame, NamePtBr: "Tabuleiro"},
	{ID: "GAME_CARD", Name: "Card", Type: CategoryTypeGame, NamePtBr: "Cartas"},
	{ID: "GAME_CASINO", Name: "Casino", Type: CategoryTypeGame, NamePtBr: "Cassino"},
	{ID: "GAME_CASUAL", Name: "Casual", Type: CategoryTypeGame, NamePtBr: "Casual"},
	{ID: "GAME_EDUCATIONAL", Name: "Educational", Type: CategoryTypeGame, NamePtBr: "Educacional"},
	{ID: "GAME_MUSIC", Name: "Music", Type: CategoryTypeGame, NamePtBr: "Música"},
	{ID: "GAME_PUZZLE", Name: "Puzzle", Type: CategoryTypeGame, NamePtBr: "Quebra-cabeça"},
	{ID: "GAME_RACING", Name: "Racing", Type: CategoryTypeGame, NamePtBr: "Corrida"},
	{ID: "GAME_ROLE_PLAYING", Name: "Role Playing", Type: CategoryTypeGame, NamePtBr: "RPG"},
	{ID: "GAME_SIMULATION", Name: "Simulation", Type: CategoryTypeGame, NamePtBr: "Simulação"},
	{ID: "GAME_SPORTS", Name: "Sports", Type: CategoryTypeGame, NamePtBr: "Esportes"},
	{ID: "GAME_STRATEGY", Name: "Strategy", Type: CategoryTypeGame, NamePtBr: "Estratégia"},
	{ID: "GAME_TRIVIA", Name: "Trivia", Type: CategoryTypeGame, NamePtBr: "Trivia"},
	{ID: "GAME_WORD", Name: "Word", Type: CategoryTypeGame, NamePtBr: "Palavras"},

	{ID: "ART_AND_DESIGN", Name: "Art & Design", Type: CategoryTypeApplication, NamePtBr: "Arte e Design"},
	{ID: "AUTO_AND_VEHICLES", Name: "Auto & Vehicles", Type: CategoryTypeApplication, NamePtBr: "Automóveis"},
	{ID: "BEAUTY", Name: "Beauty", Type: CategoryTypeApplication, NamePtBr: "Beleza"},
	{ID: "BOOKS_AND_REFERENCE", Name: "Books & Reference", Type: CategoryTypeApplication, NamePtBr: "Livros e Referências"},
	{ID: "BUSINESS", Name: "Business", Type: CategoryTypeApplication, NamePtBr: "Negócios"},
	{ID: "COMICS", Name: "Comics", Type: CategoryTypeApplication, NamePtBr: "Quadrinhos"},
	{ID: "COMMUNICATION", Name: "Communication", Type: CategoryTypeApplication, NamePtBr: "Comunicação"},
	{ID: "DATING", Name: "Dating", Type: CategoryTypeApplication, NamePtBr: "Relacionamentos"},
	{ID: "EDUCATION", Name: "Education", Type: CategoryTypeApplication, NamePtBr: "Educação"},
	{ID: "ENTERTAINMENT", Name: "Entertainment", Type: CategoryTypeApplication, NamePtBr: "Entretenimento"},
	{ID: "EVENTS", Name: "Events", Type: CategoryTypeApplication, NamePtBr: "Eventos"},
	{ID: "FINANCE", Name: "Finance", Type: CategoryTypeApplication, NamePtBr: "Finanças"},
	{ID: "FOOD_AND_DRINK", Name: "Food & Drink", Type: CategoryTypeApplication, NamePtBr: "Comida e Bebida"},
	{ID: "HEALTH_AND_FITNESS", Name: "Health & Fitness", Type: CategoryTypeApplication, NamePtBr: "Saúde e Fitness"},
	{ID: "HOUSE_AND_HOME", Name: "House & Home", Type: CategoryTypeApplication, NamePtBr: "Casa e Decoração"},
	{ID: "LIBRARIES_AND_DEMO", Name: "Libraries & Demo", Type: CategoryTypeApplication, NamePtBr: "Bibliotecas e Demos"},
	{ID: "LIFESTYLE", Name: "Lifestyle", Type: CategoryTypeApplication, NamePtBr: "Estilo de Vida"},
	{ID: "MAPS_AND_NAVIGATION", Name: "Maps & Navigation", Type: CategoryTypeApplication, NamePtBr: "Mapas e Navegação"},
	{ID: "MEDICAL", Name: "Medical", Type: CategoryTypeApplication, NamePtBr: "Medicina"},
	{ID: "MUSIC_AND_AUDIO", Name: "Music & Audio", Type: CategoryTypeApplication, NamePtBr: "Música e Áudio"},
	{ID: "NEWS_AND_MAGAZINES", Name: "News & Magazines", Type: CategoryTypeApplication, NamePtBr: "Notícias e Revistas"},
	{ID: "PARENTING", Name: "Parenting", Type: CategoryTypeApplication, NamePtBr: "Para Pais"},
	{ID: "PERSONALIZATION", Name: "Personalization", Type: CategoryTypeApplication, NamePtBr: "Personalização"},
	{ID: "PHOTOGRAPHY", Name: "Photography", Type: CategoryTypeApplication, NamePtBr: "Fotografia"},
	{ID: "PRODUCTIVITY", Name: "Productivity", Type: CategoryTypeApplication, NamePtBr: "Produtividade"},
	{ID: "SHOPPING", Name: "Shopping", Type: CategoryTypeApplication, NamePtBr: "Compras"},
	{ID: "SOCIAL", Name: "Social", Type: CategoryTypeApplication, NamePtBr: "Redes Sociais"},
	{ID: "SPORTS", Name: "Sports", Type: CategoryTypeApplication, NamePtBr: "Esportes"},
	{ID: "TOOLS", Name: "Tools", Type: CategoryTypeApplication, NamePtBr: "Ferramentas"},
	{ID: "TRAVEL_AND_LOCAL", Name: "Travel & Local", Type: CategoryTypeApplication, NamePtBr: "Viagens e Local"},
	{ID: "VIDEO_PLAYERS", Name: "Video Players & Editors", Type: CategoryTypeApplication, NamePtBr: "Reprodutores de Vídeo"},
	{ID: "WEATHER", Name: "Weather", Type: CategoryTypeApplication, NamePtBr: "Clima"},
}

// Categories returns the store taxonomy, games first.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
