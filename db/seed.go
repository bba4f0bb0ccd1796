package db

import (
	"log"

	"cartamacho/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedIfEmpty loads the official El Macho catalog on first startup. A
// catalog with any product is left untouched.
func SeedIfEmpty(database *gorm.DB) error {
	var count int64
	if err := database.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return Seed(database)
}

// Seed populates tags, categories, products and options in one
// transaction.
func Seed(database *gorm.DB) error {
	log.Println("Loading the official El Macho menu...")
	err := database.Transaction(func(tx *gorm.DB) error {
		s := &seeder{tx: tx, tags: make(map[string]uint)}

		s.createTags()

		menuDelMar := s.category("MENU_DEL_MAR", "Menú del Mar", "Seafood Menu",
			"Mariscos preparados con técnicas tradicionales",
			"Seafood prepared with traditional techniques", "🦪", 1)
		pescados := s.category("PESCADOS", "Pescados", "Fish",
			"Pescados frescos del día - Incluye: arroz, tomate, ensalada surtida, papas mayo o chilena",
			"Fresh fish - Includes: rice, tomato, mixed salad, potatoes", "🐟", 2)
		bar := s.category("BAR", "Bar", "Bar",
			"Cócteles, tragos y cervezas", "Cocktails, drinks and beers", "🍹", 3)
		bebestibles := s.category("BEBESTIBLES", "Bebestibles", "Beverages",
			"Bebidas, jugos y aguas", "Soft drinks, juices and water", "🥤", 4)
		menuNino := s.category("MENU_NINO", "Menú Niño", "Kids Menu",
			"Especial para los más pequeños", "Special for the little ones", "👶", 5)

		s.seedMenuDelMar(menuDelMar)
		s.seedPescados(pescados)
		s.seedBar(bar)
		s.seedBebestibles(bebestibles)
		s.seedMenuNino(menuNino)
		return s.err
	})
	if err != nil {
		return err
	}
	log.Println("El Macho menu loaded")
	return nil
}

type seeder struct {
	tx   *gorm.DB
	tags map[string]uint // tag code -> id
	err  error           // first failure; later steps become no-ops
}

func (s *seeder) createTags() {
	type tagRow struct {
		code, es, en, icon, bg string
		tagType                models.TagType
	}
	rows := []tagRow{
		{"PORCION_ABUNDANTE", "Porción abundante", "Generous portion", "scale", "#10B981", models.TagPortion},
		{"PLATO_GRANDE", "Plato grande", "Large plate", "maximize", "#059669", models.TagPortion},
		{"TAMANO_MACHO", "¡Tamaño Macho!", "Macho Size!", "zap", "#DC2626", models.TagPortion},
		{"PARA_2", "Ideal para 2", "Ideal for 2", "users", "#7C3AED", models.TagSharing},
		{"PARA_4_6", "Para 4-6 personas", "For 4-6 people", "users", "#A855F7", models.TagSharing},
		{"PARA_COMPARTIR", "Para compartir", "To share", "share-2", "#EC4899", models.TagSharing},
		{"MEJOR_VALOR", "Mejor valor", "Best value", "trending-up", "#F59E0B", models.TagValue},
		{"RECOMENDADO", "Recomendado", "Recommended", "award", "#F97316", models.TagSpecial},
		{"ESPECIALIDAD", "Especialidad", "Specialty", "home", "#6366F1", models.TagSpecial},
		{"MAS_PEDIDO", "El más pedido", "Most popular", "flame", "#EF4444", models.TagSpecial},
		{"4_PREPARACIONES", "4 preparaciones", "4 preparations", "chef-hat", "#14B8A6", models.TagSpecial},
	}
	for _, row := range rows {
		tag := models.TagDefinition{
			Code:            row.code,
			Text:            models.LocalizedText{Es: row.es, En: row.en},
			IconName:        row.icon,
			BackgroundColor: row.bg,
			TextColor:       "#FFFFFF",
			TagType:         row.tagType,
			Active:          true,
		}
		if s.err != nil {
			return
		}
		if err := s.tx.Create(&tag).Error; err != nil {
			s.err = err
			return
		}
		s.tags[tag.Code] = tag.ID
	}
}

func (s *seeder) category(code, nameEs, nameEn, descEs, descEn, icon string, order int) *models.Category {
	category := models.Category{
		Code:         code,
		Name:         models.LocalizedText{Es: nameEs, En: nameEn},
		Description:  models.LocalizedText{Es: descEs, En: descEn},
		IconURL:      icon,
		DisplayOrder: order,
		Active:       true,
	}
	if s.err == nil {
		if err := s.tx.Create(&category).Error; err != nil {
			s.err = err
		}
	}
	return &category
}

// product assembles a full product with its options and tags and inserts
// it in one create.
func (s *seeder) product(cat *models.Category, code, nameEs, nameEn, descEs, descEn string,
	order int, featured, recommended, catchOfDay bool,
	options []models.ProductOption, tagCodes ...string) {

	if s.err != nil {
		return
	}
	p := models.Product{
		Code:         code,
		Name:         models.LocalizedText{Es: nameEs, En: nameEn},
		Description:  models.LocalizedText{Es: descEs, En: descEn},
		CategoryID:   cat.ID,
		DisplayOrder: order,
		Active:       true,
		Available:    true,
		Featured:     featured,
		Recommended:  recommended,
		CatchOfDay:   catchOfDay,
	}
	for i := range options {
		options[i].DisplayOrder = i
		options[i].Active = true
		options[i].Available = true
	}
	p.Options = options
	for i, code := range tagCodes {
		id, ok := s.tags[code]
		if !ok {
			continue
		}
		p.Tags = append(p.Tags, models.ProductTag{TagDefinitionID: id, DisplayOrder: i})
	}
	if err := s.tx.Create(&p).Error; err != nil {
		s.err = err
	}
}

func clp(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func opt(nameEs, nameEn string, price int64, optionType models.OptionType, serves int, isDefault bool) models.ProductOption {
	people := serves
	return models.ProductOption{
		Name:         models.LocalizedText{Es: nameEs, En: nameEn},
		Price:        clp(price),
		OptionType:   optionType,
		ServesPeople: &people,
		IsDefault:    isDefault,
	}
}

func (s *seeder) seedMenuDelMar(cat *models.Category) {
	s.product(cat, "OSTIONES", "Ostiones", "Scallops",
		"Frescos ostiones: pil-pil, parmesano, salsa verde o ajillo",
		"Fresh scallops: pil-pil, parmesan, green sauce or garlic",
		1, true, true, false,
		[]models.ProductOption{
			opt("Pil-pil", "Pil-pil style", 21500, models.OptionPreparation, 2, true),
			opt("Parmesano", "Parmesan", 21500, models.OptionPreparation, 2, false),
			opt("Salsa verde", "Green sauce", 21500, models.OptionPreparation, 2, false),
			opt("Ajillo", "Garlic style", 21500, models.OptionPreparation, 2, false),
		},
		"4_PREPARACIONES", "PARA_2", "RECOMENDADO")
	s.product(cat, "MACHAS", "Machas", "Razor Clams",
		"Exquisitas machas chilenas: pil-pil, parmesano, salsa verde o ajillo",
		"Chilean razor clams: pil-pil, parmesan, green sauce or garlic",
		2, true, false, false,
		[]models.ProductOption{
			opt("Pil-pil", "Pil-pil style", 19500, models.OptionPreparation, 2, true),
			opt("Parmesano", "Parmesan", 19500, models.OptionPreparation, 2, false),
			opt("Salsa verde", "Green sauce", 19500, models.OptionPreparation, 2, false),
			opt("Ajillo", "Garlic style", 19500, models.OptionPreparation, 2, false),
		},
		"4_PREPARACIONES", "ESPECIALIDAD", "PARA_2")
	s.product(cat, "CAMARONES", "Camarones", "Shrimp",
		"Camarones premium: pil-pil, parmesano, salsa verde o ajillo",
		"Premium shrimp: pil-pil, parmesan, green sauce or garlic",
		3, true, true, false,
		[]models.ProductOption{
			opt("Pil-pil", "Pil-pil style", 19500, models.OptionPreparation, 2, true),
			opt("Parmesano", "Parmesan", 19500, models.OptionPreparation, 2, false),
			opt("Salsa verde", "Green sauce", 19500, models.OptionPreparation, 2, false),
			opt("Ajillo", "Garlic style", 19500, models.OptionPreparation, 2, false),
		},
		"4_PREPARACIONES", "MAS_PEDIDO", "PORCION_ABUNDANTE")
	s.product(cat, "JARDIN_MAR", "Jardín del Mar", "Garden of the Sea",
		"¡El plato estrella! Surtido espectacular de mariscos frescos",
		"The star dish! Spectacular assortment of fresh seafood",
		4, true, true, false,
		[]models.ProductOption{
			opt("Fuente completa", "Full platter", 35000, models.OptionSize, 4, true),
		},
		"TAMANO_MACHO", "PARA_4_6", "ESPECIALIDAD")
	s.product(cat, "CHUPE_MARISCOS", "Chupe de Mariscos", "Seafood Chupe",
		"Cremoso chupe tradicional con mariscos, gratinado con queso",
		"Creamy traditional chupe with seafood, gratinated with cheese",
		5, true, false, false,
		[]models.ProductOption{
			opt("Porción individual", "Individual portion", 17900, models.OptionSize, 1, true),
		},
		"PORCION_ABUNDANTE", "RECOMENDADO")
	s.product(cat, "LAPA_REBOSADA", "Lapa Rebosada", "Breaded Limpet",
		"Lapas frescas rebosadas y fritas, crocantes y doradas",
		"Fresh limpets breaded and fried, crispy and golden",
		6, false, false, false,
		[]models.ProductOption{
			opt("Porción", "Portion", 16900, models.OptionSize, 2, true),
		},
		"PARA_COMPARTIR")
	s.product(cat, "PASTEL_JAIBA", "Pastel de Jaiba", "Crab Casserole",
		"Delicioso pastel de jaiba gratinado al horno",
		"Delicious crab casserole baked with cheese",
		7, true, false, false,
		[]models.ProductOption{
			opt("Porción", "Portion", 17900, models.OptionSize, 1, true),
		},
		"ESPECIALIDAD", "PORCION_ABUNDANTE")
	s.product(cat, "CEVICHE", "Ceviche", "Ceviche",
		"Ceviche de pescado fresco marinado en limón",
		"Fresh fish ceviche marinated in lime",
		8, false, false, false,
		[]models.ProductOption{
			opt("Porción", "Portion", 11900, models.OptionSize, 1, true),
		},
		"MEJOR_VALOR")
	s.product(cat, "CEVICHE_MIXTO", "Ceviche Mixto", "Mixed Ceviche",
		"Generoso ceviche con pescado y mariscos",
		"Generous ceviche with fish and seafood",
		9, true, true, false,
		[]models.ProductOption{
			opt("Porción abundante", "Generous portion", 18500, models.OptionSize, 2, true),
		},
		"TAMANO_MACHO", "PARA_2", "MAS_PEDIDO")
	s.product(cat, "PAILA_MARINA", "Paila Marina", "Seafood Soup",
		"Tradicional sopa con abundantes mariscos en caldo de mar",
		"Traditional soup with abundant seafood in sea broth",
		10, true, true, false,
		[]models.ProductOption{
			opt("Paila completa", "Full bowl", 16900, models.OptionSize, 1, true),
		},
		"PORCION_ABUNDANTE", "RECOMENDADO", "ESPECIALIDAD")
	s.product(cat, "CALDILLO_CONGRIO", "Caldillo de Congrio", "Conger Eel Soup",
		"Famoso caldillo con trozo de congrio, papas y verduras",
		"Famous soup with conger eel, potatoes and vegetables",
		11, true, false, false,
		[]models.ProductOption{
			opt("Caldillo completo", "Full soup", 16900, models.OptionSize, 1, true),
		},
		"PLATO_GRANDE", "ESPECIALIDAD")
}

func (s *seeder) seedPescados(cat *models.Category) {
	type fish struct {
		code, es, en, descEs, descEn string
		order                        int
		featured, recommended        bool
		price                        int64
		friedEs, friedEn             string
		tags                         []string
	}
	fishes := []fish{
		{"JUREL", "Jurel", "Jack Mackerel", "Jurel fresco del día", "Fresh jack mackerel", 1, false, false, 17900, "Frito", "Fried", []string{"MEJOR_VALOR"}},
		{"MERLUZA", "Merluza", "Hake", "Filete de merluza fresca", "Fresh hake fillet", 2, false, false, 17500, "Frita", "Fried", []string{"MEJOR_VALOR"}},
		{"PEZ_ROCA", "Pez de Roca", "Rockfish", "Exquisito pez de roca del litoral chileno", "Exquisite Chilean rockfish", 3, false, false, 18500, "Frito", "Fried", nil},
		{"REINETA", "Reineta", "Bream", "Reineta fresca, uno de los pescados más apreciados", "Fresh bream, most appreciated fish", 4, true, true, 22500, "Frita", "Fried", []string{"PLATO_GRANDE", "RECOMENDADO"}},
		{"DORADO", "Dorado", "Mahi-mahi", "Dorado fresco de aguas profundas", "Fresh deep water mahi-mahi", 5, false, false, 19500, "Frito", "Fried", nil},
		{"CONGRIO", "Congrio", "Conger Eel", "El rey de los pescados chilenos. Trozo generoso", "The king of Chilean fish", 6, true, true, 22500, "Frito", "Fried", []string{"TAMANO_MACHO", "ESPECIALIDAD", "MAS_PEDIDO"}},
		{"ALBACORA", "Albacora", "Swordfish", "Albacora fresca, carne firme y sabor intenso", "Fresh swordfish, firm meat", 7, false, false, 17900, "Frita", "Fried", []string{"MEJOR_VALOR"}},
		{"LENGUADO", "Lenguado", "Sole", "Fino lenguado de textura delicada", "Fine sole with delicate texture", 8, true, false, 22500, "Frito", "Fried", []string{"PLATO_GRANDE", "RECOMENDADO"}},
		{"CORVINA", "Corvina", "Corvina", "Corvina fresca de carne blanca y suave", "Fresh corvina with white meat", 9, true, false, 22500, "Frita", "Fried", []string{"PLATO_GRANDE", "PORCION_ABUNDANTE"}},
	}
	for _, f := range fishes {
		s.product(cat, f.code, f.es, f.en, f.descEs, f.descEn,
			f.order, f.featured, f.recommended, false,
			[]models.ProductOption{
				opt("A la plancha", "Grilled", f.price, models.OptionPreparation, 1, true),
				opt(f.friedEs, f.friedEn, f.price, models.OptionPreparation, 1, false),
			},
			f.tags...)
	}
}

func (s *seeder) seedBar(cat *models.Category) {
	s.product(cat, "PISCO_SOUR", "Pisco Sour", "Pisco Sour",
		"El clásico cóctel chileno", "The classic Chilean cocktail",
		1, true, false, false,
		[]models.ProductOption{
			opt("Copa", "Glass", 5500, models.OptionSize, 1, true),
			opt("Jarra (4-6 copas)", "Pitcher (4-6 glasses)", 19900, models.OptionSize, 5, false),
		},
		"PARA_4_6", "MAS_PEDIDO")
	s.product(cat, "CERVEZA", "Cervezas", "Beers",
		"Cervezas nacionales e importadas", "National and imported beers",
		2, false, false, false,
		[]models.ProductOption{
			opt("Schop 500ml", "Draft 500ml", 3500, models.OptionSize, 1, true),
			opt("Botella nacional", "National bottle", 3000, models.OptionSize, 1, false),
			opt("Botella importada", "Imported bottle", 4500, models.OptionSize, 1, false),
		})
	s.product(cat, "VINO_BLANCO", "Vino Blanco", "White Wine",
		"Sauvignon Blanc ideal para mariscos", "Sauvignon Blanc ideal for seafood",
		3, false, false, false,
		[]models.ProductOption{
			opt("Copa", "Glass", 4500, models.OptionSize, 1, true),
			opt("Botella", "Bottle", 18900, models.OptionSize, 4, false),
		},
		"MEJOR_VALOR")
	s.product(cat, "VINO_TINTO", "Vino Tinto", "Red Wine",
		"Cabernet Sauvignon o Carmenere", "Cabernet Sauvignon or Carmenere",
		4, false, false, false,
		[]models.ProductOption{
			opt("Copa", "Glass", 4500, models.OptionSize, 1, true),
			opt("Botella", "Bottle", 18900, models.OptionSize, 4, false),
		})
}

func (s *seeder) seedBebestibles(cat *models.Category) {
	s.product(cat, "JUGO_NATURAL", "Jugo Natural", "Fresh Juice",
		"Jugos recién exprimidos", "Freshly squeezed juices",
		1, false, false, false,
		[]models.ProductOption{
			opt("Naranja", "Orange", 3500, models.OptionPreparation, 1, true),
			opt("Piña", "Pineapple", 3500, models.OptionPreparation, 1, false),
		})
	s.product(cat, "LIMONADA", "Limonada", "Lemonade",
		"Refrescante limonada natural", "Refreshing natural lemonade",
		2, false, false, false,
		[]models.ProductOption{
			opt("Vaso", "Glass", 2500, models.OptionSize, 1, true),
			opt("Jarra 1L", "Pitcher 1L", 6500, models.OptionSize, 4, false),
		},
		"MEJOR_VALOR")
	s.product(cat, "BEBIDAS", "Bebidas", "Soft Drinks",
		"Coca-Cola, Sprite, Fanta", "Coca-Cola, Sprite, Fanta",
		3, false, false, false,
		[]models.ProductOption{
			opt("Lata 350ml", "Can 350ml", 2000, models.OptionSize, 1, true),
			opt("Botella 500ml", "Bottle 500ml", 2500, models.OptionSize, 1, false),
		})
	s.product(cat, "AGUA_MINERAL", "Agua Mineral", "Mineral Water",
		"Con o sin gas", "Sparkling or still",
		4, false, false, false,
		[]models.ProductOption{
			opt("Sin gas 500ml", "Still 500ml", 1800, models.OptionPreparation, 1, true),
			opt("Con gas 500ml", "Sparkling 500ml", 1800, models.OptionPreparation, 1, false),
		})
}

func (s *seeder) seedMenuNino(cat *models.Category) {
	s.product(cat, "POLLO_ASADO_PAPAS", "Pollo Asado con Papas Fritas", "Roasted Chicken with Fries",
		"Delicioso pollo asado acompañado de crujientes papas fritas",
		"Delicious roasted chicken with crispy fries",
		1, false, false, false,
		[]models.ProductOption{
			opt("Plato", "Plate", 6900, models.OptionSize, 1, true),
		})
	s.product(cat, "PAPAS_FRITAS", "Porción de Papas Fritas", "French Fries",
		"Crujientes papas fritas para acompañar o compartir",
		"Crispy french fries to accompany or share",
		2, false, false, false,
		[]models.ProductOption{
			opt("Porción Chica", "Small Portion", 3500, models.OptionSize, 1, true),
			opt("Porción Grande", "Large Portion", 5500, models.OptionSize, 2, false),
		},
		"MEJOR_VALOR")
}
