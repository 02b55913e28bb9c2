package generation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/artatlas/curator/internal/artwork"
)

const (
	// Categories with fewer than this many records in a region or
	// period get that region or period called out in the prompt.
	underrepresentedThreshold = 10

	// The exclusion list shown to the model is a window over the
	// known records, rotated per batch so long collections still fit
	// in the prompt.
	exclusionWindowSize = 30
	exclusionRotateStep = 15

	maxAvoidArtists = 20
)

var targetRegions = []string{
	"Western Europe", "East Asia", "South Asia", "Middle East",
	"Africa", "Latin America", "North America", "Oceania",
}

var targetPeriods = []string{
	"Ancient", "Medieval", "Renaissance", "Baroque", "Neoclassicism",
	"Romanticism", "Realism", "Impressionism", "Modern", "Contemporary",
}

// Per-category pools of concrete movements, artists, and works the
// prompt cycles through so consecutive batches explore different ground.
var categorySuggestions = map[artwork.Category][]string{
	artwork.CategoryPainting: {
		"Consider: Byzantine mosaics, Persian miniatures, Japanese woodblock prints, African masks/paintings",
		"Explore: Mughal court paintings, Chinese landscape scrolls, Aboriginal dot paintings",
		"Include: Women artists (Artemisia Gentileschi, Sofonisba Anguissola, Judith Leyster, Mary Cassatt, Georgia O'Keeffe)",
		"Add: Latin American muralists (Orozco, Siqueiros), African American artists (Bearden, Basquiat, Jacob Lawrence)",
		"Focus on: Ancient Egyptian tomb paintings, Roman frescoes, Medieval illuminated manuscripts",
		"Consider: Dutch Golden Age (Vermeer, Hals, Steen), Spanish Baroque (Zurbarán, Ribera), Flemish landscapes",
		"Explore: Russian avant-garde (Malevich, Kandinsky, Chagall), German Expressionism (Kirchner, Nolde)",
		"Include: Asian contemporary (Yoshitomo Nara, Yayoi Kusama, Liu Xiaodong), Korean Dansaekhwa",
		"Add: Indigenous Australian (Emily Kame Kngwarreye), Native American ledger art, Caribbean (Wifredo Lam)",
		"Focus on: Symbolism (Moreau, Redon), Pre-Raphaelites (Rossetti, Burne-Jones), Art Nouveau (Mucha, Klimt)",
		"Try: Northern Renaissance (Bosch, Bruegel), Venetian (Titian, Tintoretto), Mannerism (Parmigianino)",
		"Add: Rococo (Watteau, Boucher), American Scene (Hopper, Wood), Mexican Modernism (Tamayo, Kahlo)",
		"Explore: Fauvism (Vlaminck, Derain), Orphism (Delaunay), Vorticism (Wyndham Lewis)",
		"Include: Harlem Renaissance (Aaron Douglas), Socialist Realism (Deineka), Metaphysical (de Chirico)",
		"Focus on: Color Field (Rothko, Newman, Still), Hard-Edge (Ellsworth Kelly), Op Art (Bridget Riley)",
	},
	artwork.CategorySculpture: {
		"Consider: Ancient Greek/Roman statues (Venus de Milo, Discobolus), Chinese terracotta, African bronze (Benin, Ife)",
		"Explore: Buddhist statues (Gandhara, Longmen Caves, Kamakura), Hindu temple sculpture (Khajuraho, Ellora)",
		"Include: Renaissance (Verrocchio, Cellini, Giambologna), Baroque (Algardi, Puget, Duquesnoy), Neoclassical (Thorvaldsen, Canova)",
		"Add: Modern abstract (Arp, Noguchi, David Smith, Anthony Caro), Minimalist (Judd, Andre, LeWitt)",
		"Focus on: Assyrian winged bulls, Egyptian sphinxes/Ka statues, Olmec colossal heads",
		"Consider: Medieval reliquaries, Romanesque tympanum (Moissac, Autun), Gothic portals (Chartres)",
		"Explore: Contemporary installations (Kapoor, Turrell, Eliasson), Land Art (Smithson, Heizer)",
		"Include: Women sculptors (Hepworth, Nevelson, Bourgeois, Hesse, Claudel)",
		"Add: Pacific (Easter Island Moai, Maori meeting houses), Pre-Columbian (Maya stelae, Aztec Sun Stone)",
		"Focus on: Constructivism (Tatlin, Gabo), Futurism (Boccioni), Surrealism (Giacometti, Miro)",
		"Try: Ancient Near East (Sumerian votive), Cycladic idols, Benin bronzes, Yoruba ibeji",
		"Add: Rococo (Clodion), Romantic (Rude, Barye), Realist (Carpeaux, Dalou)",
		"Explore: Pop Art (Oldenburg, Segal), Fluxus (Beuys), Process Art (Serra, Morris)",
		"Include: African contemporary (El Anatsui), Latin American (Botero), Asian (Xu Bing)",
	},
	artwork.CategoryArchitecture: {
		"Consider: Ancient temples (Parthenon, Pantheon, Karnak, Ziggurats of Ur)",
		"Explore: Islamic architecture (Dome of Rock, Alhambra, Süleymaniye, Great Mosque of Kairouan), Buddhist stupas (Borobudur, Shwedagon)",
		"Include: Gothic cathedrals (Reims, Amiens, Cologne, Salisbury), Romanesque (Cluny, Pisa, Durham)",
		"Add: Hindu temples (Angkor Wat, Brihadeeswarar, Khajuraho, Konark), Japanese shrines (Itsukushima, Ise, Byōdō-in)",
		"Focus on: Renaissance (Palazzo Medici, Palazzo Farnese, Villa Rotonda), Baroque (Versailles Chapel, Würzburg Residence)",
		"Consider: Chinese architecture (Temple of Heaven, Summer Palace), Japanese castles (Himeji, Matsumoto, Osaka)",
		"Explore: Art Nouveau (Casa Batlló, Victor Horta houses), Art Deco (Chrysler, Empire State, Hoover Dam)",
		"Include: Modernism (Bauhaus, Villa Tugendhat, Johnson Glass House), International Style (UN Headquarters, Lever House)",
		"Add: Brutalism (National Theatre London, Barbican, Habitat 67, Boston City Hall), High-Tech (Pompidou, Lloyd's)",
		"Focus on: Pre-Columbian (Chichen Itza, Machu Picchu, Teotihuacan, Palenque), African (Great Zimbabwe, Lalibela churches)",
		"Try: Byzantine (Hagia Sophia variations), Romanesque (St. Sernin Toulouse), Islamic (Cordoba Mosque, Alhambra)",
		"Add: Neoclassical (Monticello, Brandenburg Gate), Beaux-Arts (Paris Opera, Grand Central)",
		"Explore: Deconstructivism (Guggenheim Bilbao already exists, try: Vitra Fire Station, Jewish Museum Berlin)",
		"Include: Contemporary sustainable (Bosco Verticale, Edge Amsterdam), Parametric (Beijing National Stadium, Soumaya Museum)",
	},
}

// BuildPrompt assembles the generation prompt for one batch: the rotated
// exclusion list of known works, underrepresented regions and periods,
// batch-specific suggestions, and the output format with one example
// record.
func BuildPrompt(category artwork.Category, count int, known []artwork.Record, batchNum int) string {
	inCategory := make([]artwork.Record, 0, len(known))
	for _, record := range known {
		if record.Category == category {
			inCategory = append(inCategory, record)
		}
	}

	window := exclusionWindow(inCategory, batchNum)
	existingStr := "None yet"
	if len(window) > 0 {
		lines := make([]string, len(window))
		for i, record := range window {
			lines[i] = fmt.Sprintf("%d. \"%s\" by %s", i+1, record.Title, record.Artist)
		}
		existingStr = strings.Join(lines, "\n")
	}

	regionGuidance := ""
	if regions := underrepresented(targetRegions, inCategory, func(r artwork.Record) string { return r.Region }); len(regions) > 0 {
		if len(regions) > 5 {
			regions = regions[:5]
		}
		regionGuidance = "\n**PRIORITIZE THESE UNDERREPRESENTED REGIONS:** " + strings.Join(regions, ", ")
	}

	periodGuidance := ""
	if periods := underrepresented(targetPeriods, inCategory, func(r artwork.Record) string { return r.Period }); len(periods) > 0 {
		if len(periods) > 5 {
			periods = periods[:5]
		}
		periodGuidance = "\n**PRIORITIZE THESE UNDERREPRESENTED PERIODS:** " + strings.Join(periods, ", ")
	}

	suggestions := fmt.Sprintf("- %s\n- Avoid repeating artists already in collection: %s",
		suggestionFor(category, batchNum), strings.Join(avoidArtists(inCategory), ", "))

	return fmt.Sprintf(`You are an art history expert curator. Generate exactly %d UNIQUE %ss that are NOT already in our collection.

**BATCH #%d - Focus on MAXIMUM VARIETY and UNIQUENESS**

**CRITICAL:** We already have %d %ss. DO NOT repeat ANY works below:
%s

**STRATEGY:** Prioritize LESSER-KNOWN canonical works, not just famous masterpieces.
Think: second-tier artists from each period, regional variations, underrepresented cultures.
%s%s

**SPECIFIC SUGGESTIONS FOR THIS BATCH (USE THESE EXACT SUGGESTIONS):**
%s

**DIVERSITY MANDATE:**
- Each batch must include works from at least 5 different countries
- Include at least 2 non-Western works per batch of 10
- Include at least 1 woman artist (for painting/sculpture batches)
- Spread across at least 4 different time periods

**Selection Criteria (ranked):**
1. Historical significance (watershed moments, movement-defining)
2. Cultural impact (globally recognized, taught in universities)
3. Technical innovation (pioneering techniques)
4. Geographic diversity (MUST include non-Western: Islamic, Chinese, Indian, Persian, African, Latin American)
5. Temporal diversity (Ancient to Contemporary)
6. Artist diversity (include women artists, underrepresented cultures)

**Quality Standards:**
- Only canonical works from major art history textbooks
- Works in major museum collections or UNESCO sites
- Global representation (aim for 40%%+ non-Western across full dataset)

**Diversity Requirements for this batch:**
- At least 40%% should be non-Western works
- Include at least 20%% women artists (for paintings/sculpture)
- Cover at least 5 different art historical periods
- No single artist should appear more than once

For EACH %s, provide:
- title: Full artwork title (check it's NOT in the exclusion list above!)
- artist: Artist name (or "Unknown" for ancient works)
- year: Year or range (e.g., 1889 or "c. 1500" or -500 for BCE)
- category: "%s"
- medium: Material/technique
- location: Current location (museum/site)
- region: Geographic region (Western Europe, East Asia, Middle East, South Asia, Africa, Latin America, North America, Oceania)
- period: Art historical period (Ancient, Medieval, Renaissance, Baroque, Neoclassicism, Romanticism, Realism, Impressionism, Modern, Contemporary)
- movement: Specific movement or style
- scores: Rate 0-10 for:
  - historicalSignificance
  - culturalImpact
  - technicalInnovation
  - pedagogicalValue
  - diversityContribution (0 for Western European males, 10 for underrepresented)
- selectionRationale: Why this work is canonical (1-2 sentences)

**IMPORTANT:**
- Triple-check that NONE of your selections appear in the exclusion list above
- Prioritize lesser-known canonical works to ensure uniqueness
- For architecture: temples, mosques, churches, palaces, monuments, modern buildings
- For sculpture: relief, free-standing, installations from all eras
- Return ONLY valid JSON array. NO trailing commas. NO markdown.

Example format:
[
  {
    "title": "The Night Watch",
    "artist": "Rembrandt van Rijn",
    "year": 1642,
    "category": "%s",
    "medium": "Oil on canvas",
    "location": "Rijksmuseum, Amsterdam",
    "region": "Western Europe",
    "period": "Baroque",
    "movement": "Dutch Golden Age",
    "scores": {
      "historicalSignificance": 9,
      "culturalImpact": 9,
      "technicalInnovation": 8,
      "pedagogicalValue": 9,
      "diversityContribution": 0
    },
    "selectionRationale": "Revolutionary group portrait showcasing dramatic use of light and shadow, defining work of the Dutch Golden Age taught in all art history surveys."
  }
]`,
		count, category, batchNum+1, len(inCategory), category,
		existingStr, regionGuidance, periodGuidance, suggestions,
		category, category, category)
}

// exclusionWindow selects the slice of known records shown to the model,
// starting at a per-batch offset so the full collection rotates through
// the prompt over successive batches.
func exclusionWindow(inCategory []artwork.Record, batchNum int) []artwork.Record {
	if len(inCategory) == 0 {
		return nil
	}
	start := (batchNum * exclusionRotateStep) % len(inCategory)
	end := min(start+exclusionWindowSize, len(inCategory))
	return inCategory[start:end]
}

// underrepresented returns the targets with fewer than
// underrepresentedThreshold matching records.
func underrepresented(targets []string, records []artwork.Record, value func(artwork.Record) string) []string {
	var out []string
	for _, target := range targets {
		count := 0
		for _, record := range records {
			if strings.TrimSpace(value(record)) == target {
				count++
			}
		}
		if count < underrepresentedThreshold {
			out = append(out, target)
		}
	}
	return out
}

func suggestionFor(category artwork.Category, batchNum int) string {
	lines := categorySuggestions[category]
	if len(lines) == 0 {
		return "Focus on canonical works from diverse regions and periods"
	}
	return lines[batchNum%len(lines)]
}

// avoidArtists lists up to maxAvoidArtists distinct collection artists,
// sorted so the prompt is deterministic for a given collection.
func avoidArtists(inCategory []artwork.Record) []string {
	seen := make(map[string]struct{})
	var artists []string
	for _, record := range inCategory {
		artist := strings.TrimSpace(record.Artist)
		if artist == "" {
			continue
		}
		if _, ok := seen[artist]; ok {
			continue
		}
		seen[artist] = struct{}{}
		artists = append(artists, artist)
	}
	sort.Strings(artists)
	if len(artists) > maxAvoidArtists {
		artists = artists[:maxAvoidArtists]
	}
	return artists
}
