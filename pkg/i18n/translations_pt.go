package i18n

var portuguese = map[string]string{
	// head
	"meta.keywords":                "gestão de frotas, manutenção, abastecimento, rastreamento, frota, oficinas credenciadas",
	"meta.home.title":              "{org} | Sistema de Gestão de Frotas",
	"meta.home.description":        "Sistemas de gestão de frotas com manutenção, abastecimento e rastreamento integrados. 500+ oficinas credenciadas e cobertura Brasil inteiro.",
	"meta.solutions.title":         "Soluções | InstaSolutions — Manutenção, Abastecimento e Rastreamento",
	"meta.solutions.description":   "Módulos integrados com dashboards e SLAs.",
	"meta.accreditation.title":     "Parceiros | Credenciamento",
	"meta.accreditation.description": "Credencie sua oficina, loja ou posto de combustível na rede de parceiros InstaSolutions.",
	"meta.suppliers.title":         "Parceiros | Acesso ao sistema",
	"meta.suppliers.description":   "Acesso ao sistema InstaSolutions para fornecedores credenciados.",
	"meta.partnerFinance.title":    "Parceiros | Portal Financeiro",
	"meta.partnerFinance.description": "Portal financeiro para parceiros InstaSolutions.",
	"meta.clientSignup.title":      "Sou Cliente | Quero ser Cliente",
	"meta.clientSignup.description": "Solicite uma proposta e descomplique a gestão da sua frota com a InstaSolutions.",
	"meta.clientAccess.title":      "Sou Cliente | Acesso ao sistema",
	"meta.clientAccess.description": "Acesso ao sistema InstaSolutions para clientes.",
	"meta.clientFinance.title":     "Sou Cliente | Portal Financeiro",
	"meta.clientFinance.description": "Portal financeiro para clientes InstaSolutions.",
	"meta.network.title":           "Rede | InstaSolutions — Cobertura Brasil inteiro",
	"meta.network.description":     "Rede nacional com 500+ oficinas credenciadas e postos parceiros.",
	"meta.about.title":             "Sobre | InstaSolutions — Produtos e Gestão Empresarial",
	"meta.about.description":       "Integração total entre manutenção, abastecimento e rastreamento.",
	"meta.story.title":             "Quem Somos | InstaSolutions — Nossa História",
	"meta.story.description":       "Conheça a trajetória da InstaSolutions desde 2022 e nossa missão de transformar a gestão de frotas no Brasil.",
	"meta.contact.title":           "Contato | InstaSolutions — Fale com nosso time",
	"meta.contact.description":     "Solicite uma demonstração ou envie uma mensagem. Responderemos em breve.",
	"meta.thanks.title":            "Obrigado | InstaSolutions",
	"meta.thanks.description":      "Recebemos sua mensagem e retornaremos em breve.",
	"meta.notFound.title":          "Página não encontrada | InstaSolutions",
	"meta.notFound.description":    "O endereço acessado não existe.",
	"meta.formSent.title":          "Formulário enviado | InstaSolutions",

	// navigation
	"nav.home":             "Home",
	"nav.solutions":        "Soluções",
	"nav.partners":         "Parceiros",
	"nav.partners.accredit": "Quero me Credenciar",
	"nav.partners.access":  "Acesso ao sistema - Fornecedores",
	"nav.partners.finance": "Portal Financeiro",
	"nav.clients":          "Sou cliente",
	"nav.clients.signup":   "Quero ser Cliente",
	"nav.clients.access":   "Acesso ao sistema - Clientes",
	"nav.clients.finance":  "Portal Financeiro",
	"nav.network":          "Rede",
	"nav.about":            "Sobre",
	"nav.contact":          "Contato",
	"nav.talkToTeam":       "Fale com o time",
	"nav.switchLanguage":   "Switch to English",

	// buttons
	"button.seeSolutions":  "Ver soluções",
	"button.requestDemo":   "Solicitar demonstração",
	"button.credential":    "Quero me credenciar",
	"button.knowSolutions": "Conheça nossas soluções",
	"button.submit":        "Enviar",
	"button.sending":       "Enviando...",
	"button.access":        "Acessar",
	"button.backHome":      "Voltar à página inicial",
	"button.dismiss":       "Fechar",

	// footer
	"footer.rights":        "Todos os direitos reservados.",
	"footer.institutional": "Institucional",
	"footer.about":         "Sobre",
	"footer.story":         "Quem Somos",
	"footer.network":       "Rede",
	"footer.solutions":     "Soluções",
	"footer.overview":      "Visão geral",
	"footer.partners":      "Parceiros",
	"footer.accredit":      "Quero me Credenciar",
	"footer.access":        "Acesso ao sistema",
	"footer.contact":       "Contato",

	// home
	"home.badge":                 "Gestão completa de frotas",
	"home.title":                 "Plataforma corporativa para gestão de frotas com módulos integrados",
	"home.subtitle":              "Manutenção com rede de oficinas, abastecimento com rede de postos e rastreamento — tudo em um só lugar.",
	"home.highlight.1":           "+500 Parceiros e Fornecedores",
	"home.highlight.2":           "Rede de postos integrada",
	"home.highlight.3":           "Dashboards em tempo real",
	"home.carousel.alt":          "Dashboard de Frotas",
	"home.stat.workshops":        "Oficinas",
	"home.stat.coverage":         "Cobertura",
	"home.stat.coverage.value":   "Brasil inteiro",
	"home.stat.integrations":     "Integrações",
	"module.maintenance":         "Manutenção",
	"module.maintenance.1":       "Ordens de serviço digitais",
	"module.maintenance.2":       "Orçamentos, auditoria e aprovação",
	"module.maintenance.3":       "Rede de oficinas credenciadas",
	"module.fuel":                "Abastecimento",
	"module.fuel.1":              "Rede de postos integrada",
	"module.fuel.2":              "Controle de consumo & fraudes",
	"module.fuel.3":              "Relatórios por centro de custo",
	"module.tracking":            "Rastreamento",
	"module.tracking.1":          "Localização em tempo real",
	"module.tracking.2":          "Alertas e cercas virtuais",
	"module.tracking.3":          "Análise de direção e rotas",
	"home.value.title":           "Excelente custo-benefício",
	"home.value.1":               "A InstaSolutions atua na intermediação de contratação de serviços e peças automotivas para empresas e instituições públicas.",
	"home.value.2":               "Através de um software próprio e aplicativo, oferece aos clientes acesso a uma rede de credenciados que oferece seus serviços e produtos a um preço competitivo. A rede de credenciados, por sua vez, paga uma taxa à plataforma a cada serviço contratado.",
	"home.value.alt":             "Custo-benefício",
	"home.workshops.title":       "Serviços e produtos oferecidos pelas melhores oficinas do mercado",
	"home.workshops.1":           "Com um sistema de gestão de frotas conectado às melhores oficinas do mercado, você garante um atendimento completo e de qualidade.",
	"home.workshops.2":           "Desde manutenções preventivas e corretivas até serviços especializados, como alinhamento, balanceamento, trocas de peças, revisão elétrica e mecânica, além de produtos confiáveis, tudo é pensado para manter sua frota sempre em operação.",
	"home.workshops.3":           "Aproveite a conveniência e os benefícios de um convênio que une eficiência, economia e excelência no cuidado com seus veículos.",
	"home.workshops.alt":         "Oficinas",
	"home.mobile.title":          "Fique atualizado em qualquer lugar",
	"home.mobile.1":              "Com nosso sistema de gestão de frotas, você acompanha tudo o que acontece com seus veículos em tempo real, onde quer que esteja. Receba notificações sobre manutenções, relatórios de desempenho e status de serviços nos parceiros.",
	"home.mobile.2":              "Mantenha o controle total da sua frota com praticidade e tecnologia na palma da mão.",
	"home.mobile.alt":            "Atualizado",
	"home.who.title":             "Quem somos?",
	"home.who.1":                 "A InstaSolutions nasceu com o propósito de ser uma empresa jovem, inovadora e transparente, voltada para atender instituições públicas e empresas privadas. Iniciando suas atividades em 16 de setembro de 2022, na cidade de Campo Grande (MS), a empresa começou no setor automotivo, comercializando peças. Logo, expandiu sua atuação com o desenvolvimento de um sistema de gestão de manutenção que conecta clientes a uma rede credenciada de oficinas, permitindo cotações e condições vantajosas para aquisição de peças e serviços.",
	"home.who.2":                 "Em apenas dois anos, a InstaSolutions cresceu significativamente, transferindo sua matriz para Barueri (SP) e mantendo filiais em Campo Grande (MS) e Fortaleza (CE). Hoje, atende mais de 20 clientes em seis estados, entre instituições públicas e privadas, e opera com uma rede de mais de 500 oficinas credenciadas e postos de combustível.",
	"home.who.3":                 "Comprometida em expandir sua presença em todo o território nacional, a empresa segue inovando e fortalecendo sua posição no setor de gestão de frotas e manutenção automotiva.",

	// solutions
	"solutions.heading":            "Soluções",
	"solutions.maintenance.title":  "Manutenção",
	"solutions.maintenance.alt":    "Manutenção",
	"solutions.maintenance.1":      "Software moderno com acesso 24/7",
	"solutions.maintenance.2":      "Controle de saldos",
	"solutions.maintenance.3":      "Múltiplos usuários",
	"solutions.maintenance.4":      "Relatórios personalizados",
	"solutions.maintenance.5":      "Equipe de suporte",
	"solutions.maintenance.6":      "Aprovação e auditoria de orçamentos em tempo real",
	"solutions.maintenance.7":      "Histórico completo de serviços e peças utilizadas",
	"solutions.maintenance.8":      "Rede nacional com mais de 500 oficinas homologadas",
	"solutions.maintenance.9":      "Gestão de ordens de serviço com fluxos automáticos",
	"solutions.maintenance.10":     "Indicadores de performance e custos por veículo ou centro de custo",
	"solutions.maintenance.11":     "Cadastros de fornecedores e controle de garantias",
	"solutions.maintenance.12":     "Comparação automática de preços e prazos",
	"solutions.maintenance.13":     "Registro fotográfico e documental integrado",
	"solutions.fuel.title":         "Abastecimento",
	"solutions.fuel.alt":           "Abastecimento",
	"solutions.fuel.1":             "Múltiplos usuários",
	"solutions.fuel.2":             "Relatórios personalizados",
	"solutions.fuel.3":             "Equipe de suporte",
	"solutions.fuel.4":             "Software moderno com acesso 24/7",
	"solutions.fuel.5":             "Rede de postos parceiros em todo o Brasil",
	"solutions.fuel.6":             "Monitoramento de consumo e variações por veículo",
	"solutions.fuel.7":             "Prevenção ativa de fraudes em abastecimentos",
	"solutions.fuel.8":             "Relatórios detalhados por período, posto, motorista ou veículo",
	"solutions.fuel.9":             "Conciliação automática de abastecimentos",
	"solutions.fuel.10":            "Importação de notas e integração com ERP",
	"solutions.fuel.11":            "Controle por centro de custo e regras personalizadas",
	"solutions.fuel.12":            "Painel unificado de despesas de combustível",
	"solutions.fuel.13":            "Aplicativo com registro instantâneo e validações geográficas",
	"solutions.fuel.14":            "Economia",
	"solutions.tracking.title":     "Rastreamento",
	"solutions.tracking.alt":       "Rastreamento",
	"solutions.tracking.1":         "Monitoramento em tempo real com atualização contínua",
	"solutions.tracking.2":         "Alertas automáticos de velocidade, rota e comportamento de direção",
	"solutions.tracking.3":         "Cercas virtuais configuráveis para entradas e saídas de áreas",
	"solutions.tracking.4":         "Histórico completo de trajetos, eventos e deslocamentos",
	"solutions.tracking.5":         "Relatórios de telemetria e análise de condução",
	"solutions.tracking.6":         "Identificação de ociosidade e desvios operacionais",
	"solutions.tracking.7":         "Painel de manutenção preventiva baseado em quilometragem",
	"solutions.tracking.8":         "Integração com aplicativos e sistemas de gestão",
	"solutions.tracking.9":         "Rastreadores homologados e suporte técnico especializado",
	"solutions.tracking.10":        "Segurança reforçada com camadas de autenticação e controle",
	"solutions.tracking.11":        "Alertas inteligentes para manutenções preventivas",

	// partners
	"partners.banner.title":    "Venha fazer parte da rede de parceiros que mais Cresce no Brasil.",
	"partners.banner.subtitle": "Para credenciamento preencha os dados abaixo.",
	"partners.tab.postos":      "Postos de combustível",
	"partners.tab.linha":       "Linha Automotiva",

	// system access
	"access.intro":             "Para acessar nosso sistema clique no botão \"Acessar\" abaixo e você será redirecionado para nosso site.",
	"access.suppliers.banner":  "Bem vindo Fornecedor",
	"access.suppliers.alt":     "Acesso ao sistema - Fornecedores",
	"access.clients.banner":    "Bem vindo Cliente",
	"access.clients.alt":       "Acesso ao sistema - Clientes",
	"access.general":           "Acesso geral ao sistema",
	"access.fuel":              "Acesso combustível",
	"access.maintTracking":     "Acesso manutenção & rastreamento",
	"construction.banner":      "Página em construção. Aguarde lançamento em breve !",

	// clients
	"clients.heading": "Venha ser InstaSolutions e descomplique sua gestão de frotas !",
	"clients.1":       "Gerenciar uma frota não precisa ser complexo. Com a InstaSolutions, você conecta sua operação a uma plataforma completa que integra manutenção, abastecimento e rastreamento em um único sistema, oferecendo controle total e decisões rápidas baseadas em dados.",
	"clients.2":       "Nossa rede nacional com mais de 500 oficinas e postos credenciados garante atendimento padronizado, econômico e confiável em qualquer região do Brasil. Tudo isso aliado a dashboards inteligentes, processos automatizados e total transparência nos custos.",
	"clients.3":       "Ao escolher a InstaSolutions, você reduz despesas, aumenta a disponibilidade da frota e simplifica o dia a dia da sua equipe com uma solução moderna, segura e pensada para empresas e instituições que exigem eficiência e performance.",
	"clients.closing": "Seja InstaSolutions e leve sua gestão de frotas a um novo nível.",
	"clients.alt":     "Sua Frota em Dia",

	// network
	"network.heading":          "Rede nacional de atendimento",
	"network.1":                "A InstaSolutions conecta sua frota a uma rede nacional com mais de 500 oficinas e postos credenciados, garantindo atendimento rápido, padronizado e de qualidade em qualquer região do Brasil. Cada parceiro é cuidadosamente selecionado e auditado para assegurar técnica, confiabilidade e condições comerciais competitivas.",
	"network.2":                "Nossa rede atua integrada ao sistema de gestão de frotas, permitindo que manutenções, abastecimentos e serviços sejam registrados em tempo real, com total transparência, governança e controle dos custos. Isso reduz riscos, acelera decisões e aumenta a disponibilidade da frota.",
	"network.3":                "Para empresas e órgãos públicos, isso significa conveniência, economia e segurança em cada atendimento. Para nossos parceiros, é a oportunidade de ampliar negócios e atender clientes qualificados.",
	"network.closing":          "Com a InstaSolutions, sua frota tem suporte em todo o Brasil — com eficiência, tecnologia e confiança.",
	"network.alt":              "Rede de atendimento",
	"network.coverage.alt":     "Cobertura da rede",
	"network.where":            "Onde estamos",
	"network.highlight":        "Filial Destaque",
	"network.hq.label":         "Matriz - Brasil",
	"network.hq.detail":        "Atendimento nacional",
	"network.branches.label":   "Filiais",
	"network.branches.detail":  "Operação e suporte regional",
	"network.branch.label":     "Filial - Brasil",
	"network.branch.detail":    "Operação regional Centro-Oeste",

	// about
	"about.badge":         "Quem somos",
	"about.heading":       "Tecnologia corporativa para decisões rápidas e seguras",
	"about.1":             "Em um cenário operacional cada vez mais dinâmico, competitivo e orientado por dados, empresas que trabalham com frotas enfrentam desafios diários: manter veículos disponíveis, controlar custos, garantir transparência, acompanhar o desempenho em tempo real e, acima de tudo, tomar decisões rápidas e precisas. É justamente nesse ponto que a InstaSolutions se destaca — unindo tecnologia, inteligência operacional e uma rede nacional de credenciados para transformar a forma como organizações gerenciam seus veículos.",
	"about.2":             "Nossa missão é clara: simplificar a gestão de frotas e torná-la mais inteligente, econômica e eficiente. Para isso, desenvolvemos uma plataforma completa que integra manutenção, abastecimento e rastreamento em um único ecossistema digital, conectando gestores, fornecedores e operações em tempo real. Com dashboards intuitivos, análises avançadas e processos automatizados, proporcionamos uma visão completa da operação, permitindo que cada decisão seja tomada com base em dados confiáveis e atualizados.",
	"about.3":             "A tecnologia da InstaSolutions foi construída para oferecer agilidade, segurança e governança, atendendo tanto instituições públicas quanto empresas privadas que exigem alto desempenho e compliance absoluto. Nosso sistema reduz custos, elimina retrabalhos, padroniza processos e identifica oportunidades de melhoria em toda a cadeia operacional — desde a abertura de uma ordem de serviço até a finalização do abastecimento ou acompanhamento de um alerta de telemetria.",
	"about.4":             "Outro grande diferencial é nossa rede de mais de 500 oficinas credenciadas e postos parceiros, cuidadosamente selecionados e auditados para garantir qualidade, prazo e condições comerciais competitivas. Ao utilizar nossa plataforma, o cliente tem acesso imediato a essa rede, garantindo transparência, agilidade e segurança em todas as etapas do atendimento. Cada serviço contratado gera dados que retornam para o gestor em forma de relatórios, insights e indicadores — fortalecendo ainda mais o ciclo de melhoria contínua da frota.",
	"about.5":             "Somos movidos por inovação, mas também pela proximidade com nossos clientes. Por isso, contamos com uma equipe especializada em implantação, suporte e expansão, pronta para acompanhar cada parceiro com atenção e excelência. Seja em uma prefeitura, uma empresa de transporte, uma locadora ou uma frota pequena que está iniciando sua jornada de digitalização, oferecemos uma experiência completa, confiável e escalável.",
	"about.closing.lead":  "A InstaSolutions nasceu para ser mais do que um software:",
	"about.closing":       "somos uma solução corporativa que conecta pessoas, tecnologia e resultados. E continuamos evoluindo para que cada gestor execute suas decisões com máxima confiança, visão ampla da operação e total segurança — hoje e no futuro.",
	"about.carousel.alt":  "Operação InstaSolutions",

	// story
	"story.heading": "Nossa História",
	"story.1":       "A história da InstaSolutions começa com uma inquietação: por que a gestão de frotas, algo tão essencial para empresas e instituições públicas, ainda era marcada por processos lentos, falta de transparência e decisões tomadas \"no escuro\"? Foi observando essa realidade no dia a dia do setor automotivo que nasceu o desejo de fazer diferente.",
	"story.2":       "Em 16 de setembro de 2022, em Campo Grande (MS), a empresa deu seus primeiros passos como uma jovem iniciativa focada na venda de peças. Mas, desde o início, havia algo maior nos bastidores: a convicção de que a tecnologia poderia transformar completamente a forma como as frotas eram administradas no Brasil.",
	"story.3":       "Ao acompanhar os desafios de clientes e parceiros, percebemos que o problema não estava apenas no fornecimento de peças — estava na falta de integração, na ausência de dados confiáveis, na dificuldade de acompanhar serviços, na burocracia e no custo elevado que muitos enfrentavam sem sequer perceber. Foi então que surgiu a primeira grande virada de chave: desenvolver um sistema próprio de gestão de manutenção que conectasse empresas e instituições públicas a uma rede credenciada de oficinas de forma simples, rápida e transparente.",
	"story.4":       "A ideia cresceu, ganhou forma e ganhou força. Em dois anos, aquilo que começou como um pequeno projeto com grande propósito se tornou uma empresa sólida, inovadora e em expansão nacional. Transferimos nossa matriz para Barueri (SP), um dos ecossistemas corporativos mais estratégicos do país, e levamos nossa cultura jovem e colaborativa para outras regiões com as filiais de Campo Grande (MS) e Fortaleza (CE).",
	"story.5":       "Hoje, atendemos mais de 20 clientes em seis estados, conectando-os a uma rede com mais de 500 oficinas credenciadas e postos parceiros. Mas mais do que números, o que realmente importa é o impacto: cada ordem de serviço aberta, cada manutenção aprovada, cada abastecimento registrado e cada frota otimizada representa tempo economizado, dinheiro poupado e operações mais seguras e eficientes.",
	"story.6":       "A InstaSolutions nasceu da inquietação de poucos, mas cresceu com o esforço de muitos. Cresceu porque ouviu seus clientes, aprendeu com o mercado e acreditou na força da inovação. Cresceu porque entendeu que tecnologia só faz sentido quando traz simplicidade, clareza e resultados reais.",
	"story.7":       "E seguimos em movimento. Seguimos expandindo nossa presença, ampliando nossa rede, aperfeiçoando nossos produtos e construindo diariamente a confiança de quem coloca a frota em nossas mãos.",
	"story.closing": "Somos a InstaSolutions — uma empresa jovem, inovadora e comprometida com a evolução contínua. E esta é apenas a primeira parte de uma história que ainda tem muito para crescer, junto com cada cliente que confia no nosso propósito.",

	// contact
	"contact.heading":  "Vamos conversar",
	"contact.subtitle": "Preencha o formulário e retornaremos para agendar uma demonstração.",
	"contact.card":     "Contatos",
	"contact.hq":       "Endereço Matriz",
	"contact.reach":    "Entre em contato conosco",
	"contact.email":    "E-mail",
	"contact.alt":      "Contato InstaSolutions",

	// thanks / errors
	"thanks.heading":    "Obrigado!",
	"thanks.message":    "Recebemos sua mensagem e retornaremos em breve.",
	"notFound.heading":  "Página não encontrada",
	"notFound.message":  "O endereço que você tentou acessar não existe ou foi removido.",
	"error.heading":     "Algo deu errado",
	"error.message":     "Não foi possível concluir sua solicitação. Tente novamente em instantes.",

	// forms
	"form.cnpj":           "CNPJ",
	"form.legalName":      "Razão social",
	"form.tradeName":      "Nome Fantasia",
	"form.district":       "Bairro",
	"form.address":        "Endereço c/ número",
	"form.state":          "Estado",
	"form.city":           "Cidade",
	"form.email":          "E-mail",
	"form.manager":        "Responsável",
	"form.document":       "CPF/RG",
	"form.mobile":         "DDD / Celular",
	"form.landline":       "DDD / Fixo",
	"form.fuelBrand":      "Bandeira",
	"form.partnerSegment": "Segmento de atuação",
	"form.clientSegment":  "Segmento de atuação",
	"form.fleetSize":      "Quantidade de veículos",
	"form.solution":       "Qual solução deseja contratar ?",
	"form.message":        "Mensagem",
	"form.terms":          "Confirmo que concordo com os termos e processo de credenciamento da InstaSolutions.",

	"form.success.title":         "Formulário enviado",
	"form.success.accreditation": "Formulario enviado com sucesso, nossa equipe entrará em contato em até 24 horas para finalização do credenciamento, se atente ao telefone e e-mail informados",
	"form.success.client":        "Formulario enviado com sucesso, nossa equipe entrará em contato em até 24 horas para agendamento de uma reunião, se atente ao telefone e e-mail informados",
	"form.success.contact":       "Mensagem enviada com sucesso! Entraremos em contato em breve.",
	"form.redirecting":           "Você será redirecionado para a página inicial em instantes.",
	"form.error.send":            "Erro ao enviar. Tente novamente.",
	"form.error.validation":      "Verifique os campos destacados.",
	"form.error.required":        "Campo obrigatório",
	"form.error.email":           "Informe um e-mail válido",
	"form.error.terms":           "É necessário aceitar os termos de credenciamento",
	"form.error.option":          "Selecione uma opção válida",
	"form.error.duplicate":       "Este formulário já está sendo enviado. Aguarde.",
	"form.error.rateLimited":     "Muitas tentativas em pouco tempo. Aguarde um instante e tente novamente.",
}
