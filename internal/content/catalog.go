package content

import (
	"slices"
	"strconv"
)

// PricingAnchor is the fragment every "buy" button scrolls to.
const PricingAnchor = "precos"

var comparison = ComparisonList{
	OldWay: []string{
		"Estuda 1 ano para começar a trabalhar",
		"Sofre com bugs e códigos complexos",
		"Cobra caro, mas demora semanas para entregar",
		"Compete com milhares de programadores",
	},
	NewWay: []string{
		"Começa a criar no 1º dia de curso",
		"A I.A. escreve e corrige tudo para você",
		"Cobra justo e entrega em 24 horas",
		"Navega num oceano azul sem concorrência",
	},
}

var modules = []ModuleEntry{
	{
		ID:          1,
		Title:       "O Segredo do Lovable",
		Description: "Esqueça cursos que enrolam. Você vai aprender a configurar e dominar a I.A. mais potente do mundo para criação web. Do cadastro ao 'Publish'.",
		Icon:        IconZap,
	},
	{
		ID:          2,
		Title:       "Design de Alta Conversão",
		Description: "Não adianta ser rápido se for feio. Aprenda os princípios visuais que fazem um site parecer valer R$ 5.000, mesmo que você tenha feito em 30 minutos.",
		Icon:        IconPalette,
	},
	{
		ID:          3,
		Title:       "A Máquina de Vendas",
		Description: "O ouro do curso. Como encontrar clientes pagadores no Google Maps. O Script de Abordagem Irresistível. Precificação: Quanto cobrar e como receber.",
		Icon:        IconDollarSign,
	},
}

var bonuses = []BonusEntry{
	{
		Title:       `Pack de Prompts "Mestre da I.A."`,
		Description: "Meus melhores comandos prontos. É só copiar e colar para gerar sites de Dentistas, Advogados, Delivery e mais.",
		OldPrice:    "R$ 97,00",
		Icon:        IconAward,
	},
	{
		Title:       "Contrato de Prestação de Serviços",
		Description: "Um modelo de contrato simples e seguro para você usar com seus clientes e parecer ultra profissional.",
		OldPrice:    "R$ 150,00",
		Icon:        IconFileText,
	},
	{
		Title:       "Aulas de Identidade Visual com I.A.",
		Description: "Aprenda a criar logotipos, paletas de cores e identidade visual completa para empresas que não têm.",
		OldPrice:    "R$ 197,00",
		Icon:        IconPalette,
	},
	{
		Title:       "Comunidade WhatsApp Exclusiva",
		Description: "Acesso vitalício à nossa comunidade de alunos. Networking, troca de experiências e suporte.",
		OldPrice:    "Inestimável",
		Icon:        IconUsers,
	},
}

var faqs = []FaqEntry{
	{
		Question: "Preciso saber programar?",
		Answer:   "Não. O curso é focado em usar a I.A. para fazer o trabalho técnico pesado. Você será o diretor criativo, a I.A. será a operária.",
	},
	{
		Question: "Preciso de um computador potente?",
		Answer:   "Não. Tudo roda no navegador na nuvem. Qualquer PC ou notebook básico com internet serve perfeitamente.",
	},
	{
		Question: "Quanto tempo demora para ter resultados?",
		Answer:   "Depende da sua dedicação. Temos alunos que fecharam o primeiro cliente na primeira semana aplicando o script do Módulo 3.",
	},
	{
		Question: "Serve para celular?",
		Answer:   "Você pode assistir às aulas pelo celular, mas para criar os sites e usar a ferramenta Lovable com eficiência, recomendamos um computador ou notebook.",
	},
	{
		Question: "Qual a diferença entre Standard e Premium?",
		Answer:   "O Standard tem o curso completo. O Premium adiciona os bônus exclusivos (Pack de Prompts, Contrato, Aulas de Design) e a Comunidade no WhatsApp.",
	},
	{
		Question: "O suporte é vitalício?",
		Answer:   "O acesso ao curso é vitalício. O suporte direto é de 30 dias para dúvidas técnicas, mas no Plano Premium você tem a força da comunidade para sempre.",
	},
}

// Comparison returns the old-way and new-way claims.
func Comparison() ComparisonList {
	return ComparisonList{
		OldWay: slices.Clone(comparison.OldWay),
		NewWay: slices.Clone(comparison.NewWay),
	}
}

// Modules returns the curriculum in display order.
func Modules() []ModuleEntry { return slices.Clone(modules) }

// Bonuses returns the premium bonuses in display order.
func Bonuses() []BonusEntry { return slices.Clone(bonuses) }

// FAQs returns the FAQ entries in display order.
func FAQs() []FaqEntry { return slices.Clone(faqs) }

func plans(o Options) []Plan {
	features := []string{
		"Curso Completo FlashWeb",
		"Acesso Vitalício",
		"Suporte por 30 dias",
	}
	for _, m := range modules {
		features = append(features, "Módulo "+strconv.Itoa(m.ID)+": "+m.Title)
	}

	extras := []PlanExtra{{Icon: IconUsers, Label: "Comunidade WhatsApp GRATUITA"}}
	premiumBonus := []string{`Pack Prompts "Mestre"`, "Contrato de Serviços", "Aulas de Identidade Visual"}
	for i, label := range premiumBonus {
		extras = append(extras, PlanExtra{Icon: IconStar, Label: BonusLabel(i) + ": " + label})
	}

	return []Plan{
		{
			ID:        "standard",
			Badge:     "ESSENCIAL",
			Name:      "Standard",
			OldPrice:  "R$ 97,00",
			Price:     "R$ 47,90",
			PriceNote: "/único",
			Features:  features,
			CTA:       Link{Label: "COMEÇAR AGORA", Href: o.StandardCheckoutURL},
		},
		{
			ID:        "premium",
			Badge:     "MAIS VENDIDO",
			Name:      "Premium",
			OldPrice:  "R$ 297,00",
			Price:     "R$ 97,90",
			PriceNote: "Pagamento único",
			Features:  []string{"TUDO do Plano Standard", "Acesso Vitalício", "Suporte VIP"},
			Extras:    extras,
			CTA:       Link{Label: "QUERO O PREMIUM", Href: o.PremiumCheckoutURL},
			Highlight: true,
			Footnote:  "Oferta por tempo limitado",
		},
	}
}

func buildPage(o Options) Page {
	pricing := Link{Label: "GARANTIR MINHA VAGA", Href: "#" + PricingAnchor}

	return Page{
		Brand:     "FLASH",
		BrandMark: "WEB",
		HeaderCTA: pricing,
		Hero: Hero{
			Badge:        "MÉTODO EXCLUSIVO",
			Headline:     "NÃO ESTUDE PROGRAMAÇÃO",
			StruckLine:   "POR 6 MESES",
			SubPrefix:    "Descubra Como Criar Sites Profissionais em ",
			SubSpeed:     "15 Minutos",
			SubMiddle:    " Usando I.A. e Feche Seu Primeiro Contrato de ",
			SubRange:     "R$ 500 a R$ 1.500",
			SubSuffix:    " em até 30 Dias.",
			Lead:         "O método passo a passo para dominar o Lovable, sair do zero e montar sua 'Agência de Um Homem Só' sem digitar uma linha de código.",
			VideoCaption: "Assista ao vídeo de apresentação",
			VideoPoster:  "https://picsum.photos/1280/720?grayscale",
			CTA:          Link{Label: "QUERO APRENDER A CRIAR E VENDER SITES COM I.A. ➔", Href: "#" + PricingAnchor},
			CTANote:      "Acesso imediato + Bônus Exclusivos",
		},
		Comparison: ComparisonSection{
			Title:      "A NOVA ERA vs. A VELHA ERA",
			OldLabel:   "❌ O JEITO ANTIGO",
			NewLabel:   "✅ O SEU JEITO",
			Comparison: Comparison(),
		},
		Modules: ModulesSection{
			Section: Section{Title: "O Que Você Vai Aprender", Subtitle: "Um método direto ao ponto, sem teoria inútil."},
			Entries: Modules(),
		},
		Instructor: Instructor{
			Name:     "Pedro Startin",
			Role:     "Fundador da Startin & Especialista em I.A.",
			Quote:    "Minha empresa cria soluções para grandes players, mas minha missão aqui é outra: democratizar o desenvolvimento de software. Eu cansei de ver cursos complicados que duram meses. Criei o método que eu gostaria de ter tido quando comecei: Rápido, Prático e Focado em Lucro.",
			PhotoURL: "https://picsum.photos/400/400",
			PhotoAlt: "Pedro - Instrutor",
		},
		Pricing: PricingSection{
			Section:   Section{Title: "Escolha Seu Plano", Subtitle: "Comece sua nova carreira hoje mesmo."},
			Anchor:    PricingAnchor,
			Plans:     plans(o),
			Guarantee: "Garantia incondicional de 7 dias. Risco Zero.",
		},
		Bonuses: BonusesSection{
			Title:      "BÔNUS EXCLUSIVOS DO ",
			Highlight:  "PLANO PREMIUM",
			TotalLabel: "Valor total dos bônus: ",
			TotalValue: "R$ 444+",
			FreeLabel:  "Grátis",
			Entries:    Bonuses(),
		},
		FAQ: FAQSection{
			Title:   "Perguntas Frequentes",
			Entries: FAQs(),
		},
		FinalCTA: FinalCTA{
			Title:     "Comece Hoje Sua Jornada Rumo à",
			Highlight: "Liberdade Financeira",
			Text:      "Não deixe para depois. O mercado de sites com I.A. está explodindo agora. Quem chegar primeiro, bebe água limpa.",
			Links: []Link{
				{Label: "PLANO STANDARD - R$ 47,90", Href: o.StandardCheckoutURL},
				{Label: "QUERO O PREMIUM - R$ 97,90", Href: o.PremiumCheckoutURL},
			},
		},
		Footer: Footer{
			Copyright: "Copyright 2025 - FlashCode Academy - Todos os direitos reservados",
			Links: []Link{
				{Label: "Termos de Uso", Href: "#"},
				{Label: "Políticas de Privacidade", Href: "#"},
			},
		},
	}
}
